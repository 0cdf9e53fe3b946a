package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidFileName(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"30_M_patient1.csv", true},
		{"0_F_abc-123.csv", true},
		{"120_U_x.csv", true},
		{"121_M_x.csv", false},
		{"30_X_x.csv", false},
		{"30_M.csv", false},
	}
	for _, c := range cases {
		if got := ValidFileName(c.name); got != c.want {
			t.Errorf("ValidFileName(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestParseFileName(t *testing.T) {
	age, sex, err := ParseFileName("45_F_abc123.csv")
	if err != nil {
		t.Fatalf("ParseFileName: %v", err)
	}
	if age != 45 || sex != "F" {
		t.Errorf("got age=%d sex=%q, want age=45 sex=\"F\"", age, sex)
	}
}

func TestLoadRowsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "30_M_p1.csv")
	content := "patient_id,timestamp,type,text,icd10,mdcdx2,provisional,hot,jlac10,lab_value,unit,discharge_disposition\n" +
		"P000000001,20200101090000,0,,,,,,,,,\n" +
		"P000000001,20200105120000,1,,,,,,,,,01\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	rows, err := LoadRows(path)
	if err != nil {
		t.Fatalf("LoadRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Type != RecordAdmission {
		t.Errorf("rows[0].Type = %v, want RecordAdmission", rows[0].Type)
	}
	if rows[1].Type != RecordDischarge || rows[1].DischargeDisposition != "01" {
		t.Errorf("rows[1] = %+v, want RecordDischarge with disposition 01", rows[1])
	}
}

func TestLoadRowsMissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "30_M_p2.csv")
	if err := os.WriteFile(path, []byte("patient_id,timestamp,type\nP1,20200101,0\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadRows(path); err == nil {
		t.Fatal("expected error for missing required columns")
	}
}
