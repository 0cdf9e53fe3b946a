package message

import (
	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
	"github.com/gyeh/ssmixtwins/internal/segment"
)

// MessageTypePPRZD1 is the trigger-event code for a problem-list entry,
// grounded on objects/problem.py and messages/ppr/ppr_zd1.py.
const MessageTypePPRZD1 = "PPR^ZD1"

// BuildPPRZD1 builds a problem-list entry message.
//
// Grounded on messages/ppr/ppr_zd1.py. PPR^ZD1 requires an existing
// Problem; PRB-14 (ICD-10 cross-reference) is only emitted when the
// problem carries one, matching the original's behavior of treating the
// ICD-10 code as an optional secondary classification.
func BuildPPRZD1(hospital *model.Hospital, p *model.Patient, prb *model.Problem, requester *model.Physician, st Stamp) (*hl7.Message, error) {
	if p == nil {
		return nil, newProfileErr(MessageTypePPRZD1, "requires an existing Patient")
	}
	if prb == nil {
		return nil, newProfileErr(MessageTypePPRZD1, "requires an existing Problem")
	}
	if err := checkEncodable(MessageTypePPRZD1, st.CharacterSet, p.LastName, p.FirstName); err != nil {
		return nil, err
	}

	segs := []*hl7.Segment{
		buildMSH(hospital, MessageTypePPRZD1, st),
		segment.BuildPID(p),
		segment.BuildPRB(prb, requester),
	}
	return assemble(segs...), nil
}
