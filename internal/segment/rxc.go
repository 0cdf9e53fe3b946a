package segment

import (
	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
)

// BuildRXC builds one pharmacy/treatment component order segment for an
// injection order's base solution or additive.
//
// Grounded on segments/rxc.py.
func BuildRXC(c *model.InjectionComponent) *hl7.Segment {
	seg := hl7.NewSegment("RXC")
	seg.Set(1, c.ComponentType)
	seg.Set(2, hl7.Component(c.ComponentCode, hl7.Escape(c.ComponentName)))
	seg.Set(3, hl7.Escape(c.Quantity))
	seg.Set(4, c.UnitCode)
	return seg
}
