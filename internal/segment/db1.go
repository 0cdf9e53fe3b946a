package segment

import (
	"strconv"

	"github.com/gyeh/ssmixtwins/internal/hl7"
)

// BuildDB1 builds the disability information segment. Emitted only when a
// patient carries a non-empty disability code (most don't); DB1-2
// (disability type) is a constant "handicapped status" code per the
// profile, DB1-3 carries the patient's code verbatim.
//
// Grounded on segments/db1.py.
func BuildDB1(setID int, disabilityCode string) *hl7.Segment {
	seg := hl7.NewSegment("DB1")
	seg.Set(1, strconv.Itoa(setID))
	seg.Set(2, "A1")
	seg.Set(3, hl7.Escape(disabilityCode))
	return seg
}
