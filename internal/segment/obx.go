package segment

import (
	"strconv"

	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
)

// BuildOBX builds one observation result segment within a specimen's OBR
// group.
//
// Grounded on segments/obx.py.
func BuildOBX(setID int, r *model.LabResult) *hl7.Segment {
	seg := hl7.NewSegment("OBX")
	seg.Set(1, strconv.Itoa(setID))
	seg.Set(2, r.ValueType)
	seg.Set(3, hl7.Component(r.ObservationCode, "", r.ObservationCodeSystem))
	seg.Set(5, hl7.Escape(r.Value))
	seg.Set(6, r.Unit)
	seg.Set(11, r.Status)
	return seg
}
