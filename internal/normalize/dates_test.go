package normalize

import "testing"

func TestParseTimestampVariants(t *testing.T) {
	cases := []string{
		"20260103120000",
		"202601031200",
		"2026010312",
		"20260103",
		"2026-01-03 12:00:00",
		"2026-01-03",
	}
	for _, c := range cases {
		if ParseTimestamp(c) == nil {
			t.Errorf("ParseTimestamp(%q) = nil, want a parsed time", c)
		}
	}
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
	if ParseTimestamp("not-a-date") != nil {
		t.Error("expected nil for unparseable input")
	}
	if ParseTimestamp("") != nil {
		t.Error("expected nil for empty input")
	}
}

func TestFormatHL7RoundTrip(t *testing.T) {
	tm := ParseTimestamp("20260103120000")
	if tm == nil {
		t.Fatal("ParseTimestamp returned nil")
	}
	if got := FormatHL7(*tm); got != "20260103120000" {
		t.Errorf("FormatHL7() = %q", got)
	}
	if got := FormatHL7Date(*tm); got != "20260103" {
		t.Errorf("FormatHL7Date() = %q", got)
	}
}
