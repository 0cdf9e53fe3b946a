// Package source reads the generator's input format: a directory of CSV
// files, one per patient, named "<start_age>_<sex>_<identifier>.csv". This
// is the "thin, swappable shim" spec §6 carves out of the core engine — the
// rest of the engine consumes []Row, not a file handle.
//
// Grounded on original_source/ssmixtwins/src/preprocessing/preprocess_main.py
// (TABLE_DTYPES, load_table), reimplemented against encoding/csv since no
// CSV or dataframe library exists in the retrieved example pack.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// RecordType identifies which of the six input-row kinds a Row carries,
// mirroring TABLE_DTYPES's "type" column (0..5).
type RecordType int

const (
	RecordAdmission RecordType = iota
	RecordDischarge
	RecordDiagnosis
	RecordPrescription
	RecordInjection
	RecordLabResult
)

// Columns is the fixed CSV header every source file must carry, in the
// order TABLE_DTYPES declares them.
var Columns = []string{
	"patient_id", "timestamp", "type", "text", "icd10", "mdcdx2",
	"provisional", "hot", "jlac10", "lab_value", "unit", "discharge_disposition",
}

// Row is one source CSV record, type-dependent columns left empty when not
// applicable to the row's RecordType.
type Row struct {
	LineNumber           int // 1-based file line; the header is line 1, so the first data row is 2; used in violation reports
	PatientID            string
	Timestamp            string
	Type                 RecordType
	Text                 string
	ICD10                string
	MDCDX2               string
	Provisional          string
	HOT                  string
	JLAC10               string
	LabValue             string
	Unit                 string
	DischargeDisposition string
}

// fileNamePattern mirrors _validate_table's naming rule: age 0-120, sex one
// of M/F/O/U/N, then an identifier of letters, digits, and hyphens.
var fileNamePattern = regexp.MustCompile(`^(?:[0-9]|[1-9][0-9]|1[01][0-9]|120)_[MFOUN]_[a-zA-Z0-9\-]+\.csv$`)

// ValidFileName reports whether name matches the "<age>_<sex>_<id>.csv"
// convention.
func ValidFileName(name string) bool {
	return fileNamePattern.MatchString(name)
}

// ParseFileName extracts the starting age and sex encoded in a source file
// name. Callers should check ValidFileName first; ParseFileName assumes a
// well-formed name and is used only after that check passes.
func ParseFileName(name string) (startAge int, sex string, err error) {
	base := strings.TrimSuffix(filepath.Base(name), ".csv")
	parts := strings.SplitN(base, "_", 3)
	if len(parts) < 2 {
		return 0, "", fmt.Errorf("file name %q does not carry an age_sex prefix", name)
	}
	age, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", fmt.Errorf("file name %q: age segment is not numeric: %w", name, err)
	}
	return age, parts[1], nil
}

// ListPatientFiles returns every *.csv file directly under dir, sorted by
// name. Sorting makes the patient processing order — and therefore every
// derived per-patient worker index — independent of the directory's
// on-disk iteration order and of how many workers later process it.
func ListPatientFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read source directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// LoadRows reads and parses every data row of a source CSV file. Rows are
// returned in file order; sorting by (timestamp, type) for message
// generation is the caller's responsibility (internal/generate), since the
// validation driver needs the original row order to report accurate line
// numbers.
func LoadRows(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range Columns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%s: missing required column %q", path, col)
		}
	}

	var rows []Row
	lineNum := 1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: read row %d: %w", path, lineNum+1, err)
		}
		lineNum++

		typeVal, err := strconv.Atoi(strings.TrimSpace(rec[idx["type"]]))
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: type column is not an integer: %w", path, lineNum, err)
		}

		rows = append(rows, Row{
			LineNumber:           lineNum,
			PatientID:            strings.TrimSpace(rec[idx["patient_id"]]),
			Timestamp:            strings.TrimSpace(rec[idx["timestamp"]]),
			Type:                 RecordType(typeVal),
			Text:                 strings.TrimSpace(rec[idx["text"]]),
			ICD10:                strings.TrimSpace(rec[idx["icd10"]]),
			MDCDX2:               strings.TrimSpace(rec[idx["mdcdx2"]]),
			Provisional:          strings.TrimSpace(rec[idx["provisional"]]),
			HOT:                  strings.TrimSpace(rec[idx["hot"]]),
			JLAC10:               strings.TrimSpace(rec[idx["jlac10"]]),
			LabValue:             strings.TrimSpace(rec[idx["lab_value"]]),
			Unit:                 strings.TrimSpace(rec[idx["unit"]]),
			DischargeDisposition: strings.TrimSpace(rec[idx["discharge_disposition"]]),
		})
	}
	return rows, nil
}
