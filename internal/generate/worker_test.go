package generate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/message"
	"github.com/gyeh/ssmixtwins/internal/storage"
)

const testCSVHeader = "patient_id,timestamp,type,text,icd10,mdcdx2,provisional,hot,jlac10,lab_value,unit,discharge_disposition\n"

const testCSVBody = `` +
	`p1,2026-01-01 08:00:00,0,admitted for observation,,,,,,,,
p1,2026-01-01 09:00:00,2,hypertension,I10,123,1,,,,,
p1,2026-01-02 10:00:00,3,aspirin,,,,1234567890123,,,tab,
p1,2026-01-02 11:00:00,5,glucose,,,,,3D070000000000001,95,mg/dL,
p1,2026-01-03 08:00:00,1,discharged home,,,,,,,,04
`

func writeTestSourceFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "30_M_p1.csv")
	if err := os.WriteFile(path, []byte(testCSVHeader+testCSVBody), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func runWorker(t *testing.T, outputDir, path string) *PatientResult {
	t.Helper()
	hospital, roster, err := BuildRoster(99, 5)
	if err != nil {
		t.Fatalf("BuildRoster: %v", err)
	}
	messageTypes := make(map[string]bool, 6)
	for _, mt := range []string{
		message.MessageTypeADTA08, message.MessageTypeADTA01, message.MessageTypeADTA03,
		message.MessageTypeOMPO09, message.MessageTypeOMLO33, message.MessageTypePPRZD1,
	} {
		messageTypes[mt] = true
	}
	writer := storage.NewWriter(outputDir)
	result, err := ProcessPatientFile(context.Background(), path, 0, 1, hospital, roster, messageTypes, hl7.ShiftJIS, writer)
	if err != nil {
		t.Fatalf("ProcessPatientFile: %v", err)
	}
	return result
}

func TestProcessPatientFileWritesMessages(t *testing.T) {
	dir := t.TempDir()
	path := writeTestSourceFile(t, dir)
	outDir := t.TempDir()

	result := runWorker(t, outDir, path)
	if result.MessagesWritten == 0 {
		t.Fatal("expected at least one message written")
	}
	if len(result.FilesWritten) != result.MessagesWritten {
		t.Errorf("FilesWritten has %d entries, MessagesWritten=%d", len(result.FilesWritten), result.MessagesWritten)
	}
	for _, f := range result.FilesWritten {
		if _, err := os.Stat(f); err != nil {
			t.Errorf("written file %s does not exist on disk: %v", f, err)
		}
	}
}

func TestProcessPatientFileDeterministic(t *testing.T) {
	dir := t.TempDir()
	path := writeTestSourceFile(t, dir)

	out1 := t.TempDir()
	out2 := t.TempDir()
	r1 := runWorker(t, out1, path)
	r2 := runWorker(t, out2, path)

	if r1.MessagesWritten != r2.MessagesWritten {
		t.Fatalf("message counts differ across identically-seeded runs: %d vs %d", r1.MessagesWritten, r2.MessagesWritten)
	}
	for i := range r1.FilesWritten {
		rel1, _ := filepath.Rel(out1, r1.FilesWritten[i])
		rel2, _ := filepath.Rel(out2, r2.FilesWritten[i])
		if rel1 != rel2 {
			t.Errorf("file %d path differs across identically-seeded runs: %q vs %q", i, rel1, rel2)
		}
		b1, err := os.ReadFile(r1.FilesWritten[i])
		if err != nil {
			t.Fatalf("read %s: %v", r1.FilesWritten[i], err)
		}
		b2, err := os.ReadFile(r2.FilesWritten[i])
		if err != nil {
			t.Fatalf("read %s: %v", r2.FilesWritten[i], err)
		}
		if string(b1) != string(b2) {
			t.Errorf("file %d contents differ across identically-seeded runs", i)
		}
	}
}

func TestProcessPatientFileEmptySourceProducesNoMessages(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "30_M_empty.csv")
	if err := os.WriteFile(path, []byte(testCSVHeader), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	outDir := t.TempDir()
	result := runWorker(t, outDir, path)
	if result.MessagesWritten != 0 {
		t.Errorf("expected 0 messages for a header-only source file, got %d", result.MessagesWritten)
	}
}
