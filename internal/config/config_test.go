package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("message_types:\n  - ADT^A08\n  - PPR^ZD1\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.MessageTypes) != 2 {
		t.Fatalf("expected 2 message types, got %d", len(c.MessageTypes))
	}
	if c.MessageTypes[0] != "ADT^A08" || c.MessageTypes[1] != "PPR^ZD1" {
		t.Errorf("unexpected message types: %v", c.MessageTypes)
	}
}

func TestLoadFromFile_UnknownMessageType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("message_types:\n  - ADT^A08\n  - BOGUS\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for unknown message type")
	}
}

func TestLoadFromFile_EmptyDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("message_types: []\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.MessageTypes) != len(AllMessageTypes) {
		t.Errorf("expected %d default message types, got %d: %v", len(AllMessageTypes), len(c.MessageTypes), c.MessageTypes)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateRequiresSourceAndOutput(t *testing.T) {
	c := Config{MaxWorkers: 1}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for missing source dir")
	}
	c.SourceDir = t.TempDir()
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for missing output dir")
	}
	c.OutputDir = filepath.Join(t.TempDir(), "out")
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(c.MessageTypes) != len(AllMessageTypes) {
		t.Errorf("expected MessageTypes to default, got %v", c.MessageTypes)
	}
}

func TestValidateRejectsNonPositiveWorkers(t *testing.T) {
	c := Config{SourceDir: t.TempDir(), OutputDir: filepath.Join(t.TempDir(), "out"), MaxWorkers: 0}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for zero workers")
	}
}
