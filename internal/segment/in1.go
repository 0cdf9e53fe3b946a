package segment

import (
	"strconv"

	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
)

// BuildIN1 builds one insurance segment.
//
// Grounded on segments/in1.py.
func BuildIN1(setID int, ins *model.Insurance) *hl7.Segment {
	seg := hl7.NewSegment("IN1")
	seg.Set(1, strconv.Itoa(setID))
	seg.Set(2, ins.InsurancePlanCode)
	seg.Set(8, ins.InsuranceNumber)
	seg.Set(9, hl7.Escape(ins.InsuranceCompanyName))
	seg.Set(12, ins.EffectiveDate)
	seg.Set(13, ins.ExpirationDate)
	seg.Set(15, ins.InsurancePlanType)
	seg.Set(17, ins.InsuranceClassification)
	return seg
}
