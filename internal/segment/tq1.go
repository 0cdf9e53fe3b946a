package segment

import "github.com/gyeh/ssmixtwins/internal/hl7"

// TQ1Params carries an order's timing/quantity window: how often it
// repeats and the datetime range it is effective over. These are
// event-level scheduling facts supplied by the caller per order event, not
// static attributes of the drug/injection entity itself.
type TQ1Params struct {
	FrequencyCode string
	StartDateTime string
	StopDateTime  string
}

// BuildTQ1 builds the timing/quantity segment shared by prescription and
// injection orders.
//
// Grounded on segments/tq1.py.
func BuildTQ1(p TQ1Params) *hl7.Segment {
	seg := hl7.NewSegment("TQ1")
	seg.Set(1, "1")
	seg.Set(7, hl7.Component(p.StartDateTime, p.StopDateTime))
	seg.Set(8, p.FrequencyCode)
	return seg
}
