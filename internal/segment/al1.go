package segment

import (
	"strconv"

	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
)

// BuildAL1 builds one patient allergy information segment.
//
// Grounded on segments/al1.py.
func BuildAL1(setID int, a *model.Allergy) *hl7.Segment {
	seg := hl7.NewSegment("AL1")
	seg.Set(1, strconv.Itoa(setID))
	seg.Set(2, a.AllergyTypeCode)
	seg.Set(3, hl7.Component(a.AllergenCode, hl7.Escape(a.AllergenName), a.AllergenCodeSystem))
	return seg
}
