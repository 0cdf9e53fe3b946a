package message

import (
	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
	"github.com/gyeh/ssmixtwins/internal/segment"
)

// MessageTypeADTA08 is the trigger-event code for the demographic
// snapshot message.
const MessageTypeADTA08 = "ADT^A08"

// ADTA08Params carries the event context an ADT^A08 demographic snapshot
// needs beyond the Patient entity itself: the most recent admission (if
// any) so PV1 reflects current status, and an optional admit reason for
// PV2. Allergy and insurance segments come from the Patient itself.
type ADTA08Params struct {
	Admission         *model.Admission
	PV1               segment.PV1Params
	AdmitReason       string
}

// BuildADTA08 builds a patient demographic snapshot message.
//
// Grounded on messages/adt/adt_a08.py. ADT^A08 requires an existing
// Patient (precondition 1 of spec §4.E); if the patient's death indicator
// is "Y", PID-30/PID-29 must both render non-empty, or this message type's
// consumer cannot distinguish "alive" from "unknown" — the check the PID
// segment builder explicitly defers to this layer.
func BuildADTA08(hospital *model.Hospital, p *model.Patient, params ADTA08Params, st Stamp) (*hl7.Message, error) {
	if p == nil {
		return nil, newProfileErr(MessageTypeADTA08, "requires an existing Patient")
	}
	if p.IsDead() && p.DeathDateTime == "" {
		return nil, newProfileErr(MessageTypeADTA08, "death indicator is Y but PID-29 death date/time is absent")
	}
	if err := checkEncodable(MessageTypeADTA08, st.CharacterSet, p.LastName, p.FirstName, p.Address); err != nil {
		return nil, err
	}

	segs := []*hl7.Segment{
		buildMSH(hospital, MessageTypeADTA08, st),
		segment.BuildEVN("A08", st.MessageTime, hospital),
		segment.BuildPID(p),
	}
	if params.AdmitReason != "" {
		segs = append(segs, segment.BuildPV2(params.AdmitReason))
	}
	if params.Admission != nil {
		segs = append(segs, segment.BuildPV1(params.Admission, params.PV1))
	}
	if p.DisabilityCode != "" {
		segs = append(segs, segment.BuildDB1(1, p.DisabilityCode))
	}
	for i, a := range p.Allergies {
		segs = append(segs, segment.BuildAL1(i+1, a))
	}
	for i, ins := range p.Insurances {
		segs = append(segs, segment.BuildIN1(i+1, ins))
		if ins.InsuranceClassification != "" && ins.InsuranceClassification != "1" {
			segs = append(segs, segment.BuildNK1(i+1, p.LastName, p.FirstName, ins.InsuranceClassification))
		}
	}
	return assemble(segs...), nil
}
