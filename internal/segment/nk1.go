package segment

import (
	"strconv"

	"github.com/gyeh/ssmixtwins/internal/hl7"
)

// BuildNK1 builds one next-of-kin segment. The message builder emits one
// NK1 per insured party whose relationship to the patient (IN1-17) is not
// "self" — SS-MIX2 carries the insured person's identity there rather than
// inventing a separate, unmodeled guarantor entity.
//
// Grounded on segments/nk1.py.
func BuildNK1(setID int, lastName, firstName, relationshipCode string) *hl7.Segment {
	seg := hl7.NewSegment("NK1")
	seg.Set(1, strconv.Itoa(setID))
	seg.Set(2, hl7.Component(hl7.Escape(lastName), hl7.Escape(firstName)))
	seg.Set(3, relationshipCode)
	return seg
}
