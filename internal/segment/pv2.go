package segment

import "github.com/gyeh/ssmixtwins/internal/hl7"

// BuildPV2 builds the patient visit additional information segment,
// carrying the free-text admit reason attached to ADT admit events.
//
// Grounded on segments/pv2.py.
func BuildPV2(admitReason string) *hl7.Segment {
	seg := hl7.NewSegment("PV2")
	seg.Set(3, hl7.Escape(admitReason))
	return seg
}
