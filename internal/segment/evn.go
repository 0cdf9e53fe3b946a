package segment

import (
	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
)

// BuildEVN builds the event type segment, restating the ADT trigger event
// and the facility it was recorded at.
//
// Grounded on segments/evn.py.
func BuildEVN(eventTypeCode, recordedDateTime string, hospital *model.Hospital) *hl7.Segment {
	seg := hl7.NewSegment("EVN")
	seg.Set(1, eventTypeCode)
	seg.Set(2, recordedDateTime)
	seg.Set(7, hl7.Escape(hospital.FacilityID))
	return seg
}
