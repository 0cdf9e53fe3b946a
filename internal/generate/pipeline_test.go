package generate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gyeh/ssmixtwins/internal/config"
	"github.com/gyeh/ssmixtwins/internal/logging"
)

func testConfig(t *testing.T, sourceDir, outputDir string) *config.Config {
	t.Helper()
	cfg := &config.Config{
		SourceDir:      sourceDir,
		OutputDir:      outputDir,
		MaxWorkers:     2,
		Seed:           1,
		PhysicianCount: 3,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Config.Validate: %v", err)
	}
	return cfg
}

func TestPipelineErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	pe := &PipelineError{Phase: "roster", Err: inner}
	if !errors.Is(pe, inner) {
		t.Error("PipelineError should unwrap to its inner error")
	}
	if pe.Error() == "" {
		t.Error("PipelineError.Error() should not be empty")
	}
}

func TestRunFailsValidationOnMalformedSource(t *testing.T) {
	sourceDir := t.TempDir()
	badPath := filepath.Join(sourceDir, "30_M_bad.csv")
	header := "patient_id,timestamp,type,text,icd10,mdcdx2,provisional,hot,jlac10,lab_value,unit,discharge_disposition\n"
	badRow := "p1,not-a-timestamp,0,x,,,,,,,,\n"
	if err := os.WriteFile(badPath, []byte(header+badRow), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	outDir := t.TempDir()
	cfg := testConfig(t, sourceDir, outDir)
	log := logging.Setup("text")

	_, err := Run(context.Background(), cfg, log)
	if err == nil {
		t.Fatal("expected Run to fail validation on a malformed source file")
	}
	var pe *PipelineError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a *PipelineError, got %T: %v", err, err)
	}
	if pe.Phase != "validate" {
		t.Errorf("PipelineError.Phase = %q, want %q", pe.Phase, "validate")
	}
	if _, statErr := os.Stat(filepath.Join(outDir, "validation_errors.json")); statErr != nil {
		t.Errorf("expected validation_errors.json to be written: %v", statErr)
	}
}

func TestRunGeneratesFromValidSource(t *testing.T) {
	sourceDir := t.TempDir()
	path := filepath.Join(sourceDir, "30_M_p1.csv")
	header := "patient_id,timestamp,type,text,icd10,mdcdx2,provisional,hot,jlac10,lab_value,unit,discharge_disposition\n"
	rows := "p1,2026-01-01 08:00:00,0,admitted,,,,,,,,\n" +
		"p1,2026-01-03 08:00:00,1,discharged,,,,,,,,01\n"
	if err := os.WriteFile(path, []byte(header+rows), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	outDir := t.TempDir()
	cfg := testConfig(t, sourceDir, outDir)
	log := logging.Setup("text")

	summary, err := Run(context.Background(), cfg, log)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.PatientsProcessed != 1 {
		t.Errorf("PatientsProcessed = %d, want 1", summary.PatientsProcessed)
	}
	if summary.MessagesWritten == 0 {
		t.Error("expected at least one message written")
	}
}

func TestRunSkipsValidationWhenAlreadyValidated(t *testing.T) {
	sourceDir := t.TempDir()
	path := filepath.Join(sourceDir, "30_M_p1.csv")
	header := "patient_id,timestamp,type,text,icd10,mdcdx2,provisional,hot,jlac10,lab_value,unit,discharge_disposition\n"
	badRow := "p1,not-a-timestamp,0,x,,,,,,,,\n"
	if err := os.WriteFile(path, []byte(header+badRow), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	outDir := t.TempDir()
	cfg := testConfig(t, sourceDir, outDir)
	cfg.AlreadyValidated = true
	log := logging.Setup("text")

	_, err := Run(context.Background(), cfg, log)
	if err == nil {
		t.Fatal("expected Run to still fail, but now during generation rather than validation")
	}
	var pe *PipelineError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a *PipelineError, got %T: %v", err, err)
	}
	if pe.Phase != "generate" {
		t.Errorf("PipelineError.Phase = %q, want %q (validation was skipped)", pe.Phase, "generate")
	}
}
