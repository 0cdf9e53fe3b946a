package segment

import (
	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
)

// BuildSPM builds the specimen segment for one specimen group.
//
// Grounded on segments/spm.py.
func BuildSPM(s *model.LabResultSpecimen) *hl7.Segment {
	seg := hl7.NewSegment("SPM")
	seg.Set(1, "1")
	seg.Set(2, hl7.Escape(s.SpecimenID))
	seg.Set(4, hl7.Component(s.SpecimenCode, hl7.Escape(s.SpecimenName), s.SpecimenCodeSystem))
	seg.Set(17, s.SampledTime)
	return seg
}
