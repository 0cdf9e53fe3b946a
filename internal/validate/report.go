package validate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// reportFileName is the fixed name validate_csv_files writes its error
// summary to, inside the run's output directory.
const reportFileName = "validation_errors.json"

// WriteReport serializes report to <outputDir>/validation_errors.json,
// grouped by file, and returns the path written. Callers only need to call
// this when report is non-empty; writing an empty report is harmless but
// pointless.
func WriteReport(report *Report, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(outputDir, reportFileName)

	byFile := report.ByFile()
	out := make(map[string][]string, len(byFile))
	for file, violations := range byFile {
		lines := make([]string, 0, len(violations))
		for _, v := range violations {
			lines = append(lines, v.String())
		}
		out[file] = lines
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal validation report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write validation report: %w", err)
	}
	return path, nil
}
