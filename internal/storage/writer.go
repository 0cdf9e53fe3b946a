package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes rendered message bodies to their bucketed location under
// an output directory, creating intermediate directories as needed.
//
// Grounded on basics.py::save_message_to_file, which is likewise a plain
// os.makedirs + write — no third-party filesystem library exists in the
// retrieved pack for this, so the writer is stdlib os/path only.
type Writer struct {
	OutputDir string
}

// NewWriter constructs a Writer rooted at outputDir.
func NewWriter(outputDir string) *Writer {
	return &Writer{OutputDir: outputDir}
}

// WriteMessage writes body to the bucketed path computed from the given
// patient/date/data-type/file-name components, returning the full path
// written.
func (w *Writer) WriteMessage(patientID, date string, dataType DataType, fileName string, body []byte) (string, error) {
	dir, err := FilePath(w.OutputDir, patientID, date, dataType)
	if err != nil {
		return "", fmt.Errorf("compute file path: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create directory %s: %w", dir, err)
	}
	full := filepath.Join(dir, fileName)
	if err := os.WriteFile(full, body, 0o644); err != nil {
		return "", fmt.Errorf("write message file %s: %w", full, err)
	}
	return full, nil
}
