// Package generate turns one patient's validated source rows into the full
// set of HL7 messages SPEC_FULL names, and writes them to their bucketed
// location under the run's output directory.
//
// Grounded on original_source/ssmixtwins/src/preprocessing/preprocess_main.py
// (parse_table) and src/main.py (create_ssmix), reimplemented against a
// bounded worker pool instead of a ProcessPoolExecutor.
package generate

import (
	"fmt"
	"sort"
	"time"

	"github.com/gyeh/ssmixtwins/internal/normalize"
	"github.com/gyeh/ssmixtwins/internal/source"
)

// recordPrecedence resolves how rows of different categories order against
// each other when they share one timestamp — an open question spec.md left
// unresolved and SPEC_FULL §9 settles: admission/discharge events come
// first, then orders (prescription and injection share a bucket, since
// both become OMP^O09 messages), then lab results, then diagnoses, with
// the synthetic closing snapshot always sorting last of all.
func recordPrecedence(t source.RecordType) int {
	switch t {
	case source.RecordAdmission, source.RecordDischarge:
		return 0
	case source.RecordPrescription, source.RecordInjection:
		return 1
	case source.RecordLabResult:
		return 2
	case source.RecordDiagnosis:
		return 3
	default:
		return 4
	}
}

// closingSnapshotPrecedence is reserved for the synthetic closing ADT^A08
// snapshot, built separately from BuildEvents and always emitted last.
const closingSnapshotPrecedence = 4

// timedRow pairs a source row with its parsed timestamp so the sort below
// never has to re-parse the timestamp string.
type timedRow struct {
	row source.Row
	at  time.Time
}

// Event groups every source row that shares one timestamp and record type,
// mirroring parse_table's groupby(["timestamp", "type"]). Most record
// types synthesize one message per Event; diagnosis, prescription,
// injection, and lab events may fan out into several messages per spec
// §4.E and §12.
type Event struct {
	At   time.Time
	Type source.RecordType
	Rows []source.Row
}

// BuildEvents sorts a patient's rows into chronological, precedence-broken
// order and groups consecutive rows sharing one (timestamp, type) pair
// into a single Event. A row with an unparseable timestamp produces an
// error here; the pre-flight validator (internal/validate) is expected to
// have already rejected such a file, so reaching this indicates validation
// was skipped for this run.
func BuildEvents(rows []source.Row) ([]Event, error) {
	timed := make([]timedRow, 0, len(rows))
	for _, r := range rows {
		t := normalize.ParseTimestamp(r.Timestamp)
		if t == nil {
			return nil, fmt.Errorf("row %d: unparseable timestamp %q", r.LineNumber, r.Timestamp)
		}
		timed = append(timed, timedRow{row: r, at: *t})
	}

	sort.SliceStable(timed, func(i, j int) bool {
		a, b := timed[i], timed[j]
		if !a.at.Equal(b.at) {
			return a.at.Before(b.at)
		}
		pa, pb := recordPrecedence(a.row.Type), recordPrecedence(b.row.Type)
		if pa != pb {
			return pa < pb
		}
		return a.row.Type < b.row.Type
	})

	var events []Event
	for _, tr := range timed {
		n := len(events)
		if n > 0 && events[n-1].At.Equal(tr.at) && events[n-1].Type == tr.row.Type {
			events[n-1].Rows = append(events[n-1].Rows, tr.row)
			continue
		}
		events = append(events, Event{At: tr.at, Type: tr.row.Type, Rows: []source.Row{tr.row}})
	}
	return events, nil
}

// oldestAndNewest returns the earliest and latest event timestamps,
// floored to day precision, used to derive a patient's date of birth.
// Callers must pass a non-empty events slice.
func oldestAndNewest(events []Event) (oldest, newest time.Time) {
	oldest = floorToDay(events[0].At)
	newest = oldest
	for _, e := range events[1:] {
		d := floorToDay(e.At)
		if d.Before(oldest) {
			oldest = d
		}
		if d.After(newest) {
			newest = d
		}
	}
	return oldest, newest
}

func floorToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// reverseDigits reverses a digit string, used to seed the per-patient order
// number sequence (preprocess_main.py::random_order_number).
func reverseDigits(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// orderNumberSeq produces the shared requester/filler order number each
// event's orders/problems/labs carry, one new value per call.
//
// Grounded on preprocess_main.py::random_order_number: the patient ID read
// backwards, suffixed with an increasing counter, zero-padded to width by
// the model constructors that consume it.
type orderNumberSeq struct {
	reversed string
	counter  int
}

func newOrderNumberSeq(patientID string) *orderNumberSeq {
	return &orderNumberSeq{reversed: reverseDigits(patientID)}
}

// Next returns the next order number in the sequence, as a bare digit
// string (ZeroPad15 at the model layer handles the fixed-width rendering).
func (s *orderNumberSeq) Next() string {
	s.counter++
	return fmt.Sprintf("%s%d", s.reversed, s.counter)
}
