package segment

import "github.com/gyeh/ssmixtwins/internal/hl7"

// BuildRXR builds the pharmacy/treatment route segment, shared by
// prescription and injection orders.
//
// Grounded on segments/rxr.py.
func BuildRXR(routeCode, routeDeviceCode string) *hl7.Segment {
	seg := hl7.NewSegment("RXR")
	seg.Set(1, routeCode)
	seg.Set(2, routeDeviceCode)
	return seg
}
