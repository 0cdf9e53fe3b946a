package validate

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
}

const header = "patient_id,timestamp,type,text,icd10,mdcdx2,provisional,hot,jlac10,lab_value,unit,discharge_disposition\n"

func TestSweepCleanFile(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "30_M_p1.csv", header+
		"P000000001,20200101090000,0,,,,,,,,,\n"+
		"P000000001,20200105120000,1,,,,,,,,,01\n")

	report, err := Sweep(dir, 0)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if !report.Valid() {
		t.Errorf("expected no violations, got %v", report.Violations)
	}
}

func TestSweepBadFileName(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "thirty_M_p1.csv", header+"P1,20200101090000,0,,,,,,,,,\n")

	report, err := Sweep(dir, 0)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if report.Valid() {
		t.Fatal("expected a file_name_format violation")
	}
}

func TestSweepDischargeMissingDisposition(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "30_M_p2.csv", header+"P000000001,20200101090000,1,,,,,,,,,\n")

	report, err := Sweep(dir, 0)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	found := false
	for _, v := range report.Violations {
		if v.Rule == "discharge_disposition_missing" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected discharge_disposition_missing, got %v", report.Violations)
	}
}

func TestSweepLabRowBadJLAC10Length(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "30_M_p3.csv", header+"P000000001,20200101090000,5,,,,,,1234,10,mg/dL,\n")

	report, err := Sweep(dir, 0)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	found := false
	for _, v := range report.Violations {
		if v.Rule == "jlac10_length" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected jlac10_length, got %v", report.Violations)
	}
}

func TestSweepAdmissionDischargeSequenceError(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "30_M_p4.csv", header+"P000000001,20200101090000,1,,,,,,,,,01\n")

	report, err := Sweep(dir, 0)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	found := false
	for _, v := range report.Violations {
		if v.Rule == "admission_discharge_sequence" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected admission_discharge_sequence, got %v", report.Violations)
	}
}

func TestSweepEarlyExit(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a_bad.csv", header+"P1,x,9,,,,,,,,,\n")
	writeFixture(t, dir, "b_bad.csv", header+"P1,x,9,,,,,,,,,\n")

	report, err := Sweep(dir, 1)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(report.Violations) > 3 {
		t.Errorf("expected early exit to bound violations, got %d", len(report.Violations))
	}
}
