package normalize

import (
	"strings"
	"time"
)

// HL7 timestamp formats this package accepts, most precise first within
// each separator style, matching the CSV source columns' mix of date-only and full-precision
// values.
//
// Grounded on original_source/ssmixtwins/src/utils/timestamps.py's
// TIMESTAMP_FORMATS / to_datetime_anything.
var timestampFormats = []string{
	"20060102150405",
	"200601021504",
	"2006010215",
	"20060102",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

// ParseTimestamp attempts to parse s against every accepted timestamp
// format and returns the first match. Returns nil for empty or
// unparseable input rather than an error, matching the source's
// to_datetime_anything, which treats an unparseable timestamp as a
// validation-layer concern rather than a parse-layer one.
func ParseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// FormatHL7 renders t in HL7's YYYYMMDDHHMMSS form, the precision every
// segment builder in this module writes for DTM-valued fields.
func FormatHL7(t time.Time) string {
	return t.Format("20060102150405")
}

// FormatHL7Date renders t in HL7's YYYYMMDD form, used for date-only
// fields such as PID-7 (date of birth).
func FormatHL7Date(t time.Time) string {
	return t.Format("20060102")
}

// ValidTimestampFormat reports whether s parses under one of the accepted
// layouts (ParseTimestamp returns non-nil), for use by the pre-flight CSV
// validator.
func ValidTimestampFormat(s string) bool {
	return ParseTimestamp(s) != nil
}
