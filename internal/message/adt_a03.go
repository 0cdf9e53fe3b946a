package message

import (
	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
	"github.com/gyeh/ssmixtwins/internal/segment"
)

// MessageTypeADTA03 is the trigger-event code for the discharge
// notification.
const MessageTypeADTA03 = "ADT^A03"

// BuildADTA03 builds a discharge notification message.
//
// Grounded on messages/adt/adt_a03.py. ADT^A03 tightens PV1-45 (discharge
// date/time) and PV1-36 (discharge disposition) from segment-optional to
// message-required.
func BuildADTA03(hospital *model.Hospital, p *model.Patient, a *model.Admission, pv1 segment.PV1Params, st Stamp) (*hl7.Message, error) {
	if p == nil {
		return nil, newProfileErr(MessageTypeADTA03, "requires an existing Patient")
	}
	if a == nil {
		return nil, newProfileErr(MessageTypeADTA03, "requires an existing Admission")
	}
	if pv1.DischargeDateTime == "" {
		return nil, newProfileErr(MessageTypeADTA03, "PV1-45 discharge date/time is required")
	}
	if err := requireTable(model.DischargeDisposition, pv1.DischargeDisposition); err != nil {
		return nil, newProfileErr(MessageTypeADTA03, "PV1-36 discharge disposition: %v", err)
	}
	if err := checkEncodable(MessageTypeADTA03, st.CharacterSet, p.LastName, p.FirstName); err != nil {
		return nil, err
	}

	segs := []*hl7.Segment{
		buildMSH(hospital, MessageTypeADTA03, st),
		segment.BuildEVN("A03", st.MessageTime, hospital),
		segment.BuildPID(p),
		segment.BuildPV1(a, pv1),
	}
	return assemble(segs...), nil
}
