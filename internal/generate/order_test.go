package generate

import (
	"testing"

	"github.com/gyeh/ssmixtwins/internal/source"
)

func TestRecordPrecedenceOrdering(t *testing.T) {
	cases := []struct {
		a, b source.RecordType
	}{
		{source.RecordAdmission, source.RecordPrescription},
		{source.RecordDischarge, source.RecordInjection},
		{source.RecordInjection, source.RecordLabResult},
		{source.RecordLabResult, source.RecordDiagnosis},
	}
	for _, c := range cases {
		if recordPrecedence(c.a) >= recordPrecedence(c.b) {
			t.Errorf("recordPrecedence(%v) should sort before recordPrecedence(%v)", c.a, c.b)
		}
	}
}

func TestBuildEventsGroupsByTimestampAndType(t *testing.T) {
	rows := []source.Row{
		{LineNumber: 2, Timestamp: "2026-01-02 09:00:00", Type: source.RecordLabResult, JLAC10: "001"},
		{LineNumber: 3, Timestamp: "2026-01-02 09:00:00", Type: source.RecordLabResult, JLAC10: "002"},
		{LineNumber: 1, Timestamp: "2026-01-01 08:00:00", Type: source.RecordAdmission},
	}
	events, err := BuildEvents(rows)
	if err != nil {
		t.Fatalf("BuildEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Type != source.RecordAdmission {
		t.Errorf("events[0].Type = %v, want RecordAdmission (earlier timestamp sorts first)", events[0].Type)
	}
	if events[1].Type != source.RecordLabResult || len(events[1].Rows) != 2 {
		t.Errorf("events[1] = %+v, want a 2-row RecordLabResult group", events[1])
	}
}

func TestBuildEventsBreaksTiesByPrecedence(t *testing.T) {
	rows := []source.Row{
		{LineNumber: 1, Timestamp: "2026-01-01 08:00:00", Type: source.RecordDiagnosis},
		{LineNumber: 2, Timestamp: "2026-01-01 08:00:00", Type: source.RecordAdmission},
	}
	events, err := BuildEvents(rows)
	if err != nil {
		t.Fatalf("BuildEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Type != source.RecordAdmission {
		t.Errorf("events[0].Type = %v, want RecordAdmission to sort before a same-timestamp diagnosis", events[0].Type)
	}
}

func TestBuildEventsRejectsUnparseableTimestamp(t *testing.T) {
	rows := []source.Row{{LineNumber: 5, Timestamp: "not-a-date", Type: source.RecordAdmission}}
	if _, err := BuildEvents(rows); err == nil {
		t.Fatal("expected an error for an unparseable timestamp")
	}
}

func TestOldestAndNewestFloorsToDay(t *testing.T) {
	rows := []source.Row{
		{LineNumber: 1, Timestamp: "2026-01-05 23:00:00", Type: source.RecordAdmission},
		{LineNumber: 2, Timestamp: "2026-01-01 01:00:00", Type: source.RecordDischarge},
	}
	events, err := BuildEvents(rows)
	if err != nil {
		t.Fatalf("BuildEvents: %v", err)
	}
	oldest, newest := oldestAndNewest(events)
	if oldest.Day() != 1 || newest.Day() != 5 {
		t.Errorf("oldestAndNewest() = %v, %v; want day 1 and day 5", oldest, newest)
	}
	if oldest.Hour() != 0 || newest.Hour() != 0 {
		t.Errorf("oldestAndNewest() did not floor to day precision: %v, %v", oldest, newest)
	}
}

func TestReverseDigits(t *testing.T) {
	if got := reverseDigits("0000000001"); got != "1000000000" {
		t.Errorf("reverseDigits(%q) = %q, want %q", "0000000001", got, "1000000000")
	}
}

func TestOrderNumberSeqIncrementsAndIsStable(t *testing.T) {
	s := newOrderNumberSeq("0000000001")
	first := s.Next()
	second := s.Next()
	if first == second {
		t.Errorf("successive Next() calls returned the same value %q", first)
	}
	if got, want := first, reverseDigits("0000000001")+"1"; got != want {
		t.Errorf("first order number = %q, want %q", got, want)
	}
}
