package message

import (
	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
	"github.com/gyeh/ssmixtwins/internal/segment"
)

// MessageTypeADTA01 is the trigger-event code for the admit notification.
const MessageTypeADTA01 = "ADT^A01"

// ADTA01Params carries the admit event's own fields.
type ADTA01Params struct {
	PV1         segment.PV1Params
	AdmitReason string
}

// BuildADTA01 builds an admit notification message.
//
// Grounded on messages/adt/adt_a01.py. Requires a Patient and an
// Admission; ADT^A01 tightens PV1-44 (admit date/time) from
// segment-builder-optional to message-required, since an admit
// notification with no admit time is a profile error.
func BuildADTA01(hospital *model.Hospital, p *model.Patient, a *model.Admission, params ADTA01Params, st Stamp) (*hl7.Message, error) {
	if p == nil {
		return nil, newProfileErr(MessageTypeADTA01, "requires an existing Patient")
	}
	if a == nil {
		return nil, newProfileErr(MessageTypeADTA01, "requires an existing Admission")
	}
	if params.PV1.AdmitDateTime == "" {
		return nil, newProfileErr(MessageTypeADTA01, "PV1-44 admit date/time is required")
	}
	if params.PV1.PatientClass == "" {
		return nil, newProfileErr(MessageTypeADTA01, "PV1-2 patient class is required")
	}
	if err := checkEncodable(MessageTypeADTA01, st.CharacterSet, p.LastName, p.FirstName); err != nil {
		return nil, err
	}

	segs := []*hl7.Segment{
		buildMSH(hospital, MessageTypeADTA01, st),
		segment.BuildEVN("A01", st.MessageTime, hospital),
		segment.BuildPID(p),
		segment.BuildPV1(a, params.PV1),
	}
	if params.AdmitReason != "" {
		segs = append(segs, segment.BuildPV2(params.AdmitReason))
	}
	return assemble(segs...), nil
}
