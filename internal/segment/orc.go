package segment

import (
	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
)

// ORCParams carries the common-order fields shared by prescription,
// injection, lab, and problem orders.
type ORCParams struct {
	OrderControl        string
	RequesterOrderNumber string
	FillerOrderNumber   string
	OrderStatus         string
	OrderDateTime       string
}

// BuildORC builds the common order segment.
//
// Grounded on segments/orc.py.
func BuildORC(p ORCParams, requester *model.Physician) *hl7.Segment {
	seg := hl7.NewSegment("ORC")
	seg.Set(1, p.OrderControl)
	seg.Set(2, p.RequesterOrderNumber)
	if p.FillerOrderNumber != "" {
		seg.Set(3, p.FillerOrderNumber)
	}
	seg.Set(5, p.OrderStatus)
	seg.Set(9, p.OrderDateTime)
	if requester != nil {
		seg.Set(12, hl7.Component(requester.PhysicianID, hl7.Escape(requester.LastName), hl7.Escape(requester.FirstName)))
	}
	return seg
}
