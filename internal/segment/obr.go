package segment

import (
	"strconv"

	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
)

// BuildOBR builds the observation request segment header for one specimen
// group's lab test panel.
//
// Grounded on segments/obr.py.
func BuildOBR(setID int, s *model.LabResultSpecimen, requester *model.Physician) *hl7.Segment {
	seg := hl7.NewSegment("OBR")
	seg.Set(1, strconv.Itoa(setID))
	seg.Set(4, hl7.Component(s.TestTypeCode, hl7.Escape(s.TestTypeName)))
	seg.Set(6, s.OrderEffectiveTime)
	seg.Set(7, s.SampledTime)
	seg.Set(22, s.ReportedTime)
	seg.Set(25, s.OrderStatus)
	if requester != nil {
		seg.Set(16, hl7.Component(requester.PhysicianID, hl7.Escape(requester.LastName), hl7.Escape(requester.FirstName)))
	}
	return seg
}
