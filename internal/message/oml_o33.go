package message

import (
	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
	"github.com/gyeh/ssmixtwins/internal/segment"
)

// MessageTypeOMLO33 is the trigger-event code for a lab order+result
// message: one message per distinct specimen group.
const MessageTypeOMLO33 = "OML^O33"

// BuildOMLO33 builds a lab order+result message for one specimen group.
//
// Grounded on messages/oul/oul_r22.py, re-profiled here from OUL^R22 to
// OML^O33. OML^O33 requires a LabResultSpecimen with at least one
// observation result — the entity constructor already enforces this, but
// the message builder re-checks it as its own precondition, since a
// future caller bypassing the constructor (e.g. during a test) must not
// be able to produce a message with zero OBX segments.
func BuildOMLO33(hospital *model.Hospital, p *model.Patient, s *model.LabResultSpecimen, orc segment.ORCParams, requester *model.Physician, st Stamp) (*hl7.Message, error) {
	if p == nil {
		return nil, newProfileErr(MessageTypeOMLO33, "requires an existing Patient")
	}
	if s == nil {
		return nil, newProfileErr(MessageTypeOMLO33, "requires an existing LabResultSpecimen")
	}
	if len(s.Results) == 0 {
		return nil, newProfileErr(MessageTypeOMLO33, "specimen group requires at least one observation result")
	}
	if err := checkEncodable(MessageTypeOMLO33, st.CharacterSet, p.LastName, p.FirstName, s.SpecimenName); err != nil {
		return nil, err
	}

	segs := []*hl7.Segment{
		buildMSH(hospital, MessageTypeOMLO33, st),
		segment.BuildPID(p),
		segment.BuildORC(orc, requester),
		segment.BuildOBR(1, s, requester),
		segment.BuildSPM(s),
	}
	for i, r := range s.Results {
		segs = append(segs, segment.BuildOBX(i+1, r))
	}
	return assemble(segs...), nil
}
