package segment

import (
	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
)

// BuildPRB builds the problem detail segment for one PPR^ZD1 entry.
//
// Grounded on segments/prb.py.
func BuildPRB(p *model.Problem, requester *model.Physician) *hl7.Segment {
	seg := hl7.NewSegment("PRB")
	seg.Set(1, p.ActionCode)
	seg.Set(3, hl7.Component(p.DxCode, "", p.DxCodeSystem))
	seg.Set(4, p.DateOfDiagnosis)
	if requester != nil {
		seg.Set(10, hl7.Component(requester.PhysicianID, hl7.Escape(requester.LastName), hl7.Escape(requester.FirstName)))
	}
	seg.Set(13, p.DiagnosisType)
	if p.ICD10Code != "" {
		seg.Set(14, hl7.Component(p.ICD10Code, "", "I10"))
	}
	seg.Set(27, p.OrderControl)
	seg.Set(28, p.RequesterOrderNumber)
	if p.FillerOrderNumber != "" {
		seg.Set(29, p.FillerOrderNumber)
	}
	return seg
}
