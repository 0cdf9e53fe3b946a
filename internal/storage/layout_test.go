package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFilePathBuckets(t *testing.T) {
	got, err := FilePath("/out", "P000123456", "20260103", DataTypeADT)
	if err != nil {
		t.Fatalf("FilePath: %v", err)
	}
	want := filepath.Join("/out", RootDirName, "P00", "012", "P000123456", "20260103", "ADT-00")
	if got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
}

func TestFilePathRejectsShortID(t *testing.T) {
	if _, err := FilePath("/out", "abc", "20260103", DataTypeADT); err == nil {
		t.Fatal("expected error for too-short patient ID")
	}
}

func TestFileNameShape(t *testing.T) {
	got := FileName("P000123456", "20260103", DataTypeOrder, "000000000000001", "20260103120000000", "10", ConditionNormal)
	want := "P000123456_20260103_OMP-01_000000000000001_20260103120000000_10_0"
	if got != want {
		t.Errorf("FileName() = %q, want %q", got, want)
	}
}

func TestWriterWriteMessage(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	path, err := w.WriteMessage("P000123456", "20260103", DataTypeADT, "somefile", []byte("MSH|...\r"))
	if err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "MSH|...\r" {
		t.Errorf("file content = %q", data)
	}
}
