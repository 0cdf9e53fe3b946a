package message

import (
	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
	"github.com/gyeh/ssmixtwins/internal/segment"
)

// MessageTypeOMPO09 is the trigger-event code shared by prescription and
// injection orders — spec §4.E names one message type for both order
// kinds, distinguished by which builder is called.
const MessageTypeOMPO09 = "OMP^O09"

// OrderContext carries the encounter linkage every order message needs:
// which patient, which visit context (inpatient/outpatient), and which
// physicians placed/will fill the order.
type OrderContext struct {
	PatientClass string // "I" or "O", per spec §3 Order's "admission context"
	ORC          segment.ORCParams
	TQ1          segment.TQ1Params
	Requester    *model.Physician
}

// BuildOMPO09Prescription builds a prescription order message.
//
// Grounded on messages/rde/rde_o11.py, re-profiled here from RDE^O11 to
// OMP^O09. OMP^O09 requires an existing Patient and a
// PrescriptionOrder with a resolved minimum dose field (the entity
// constructor already enforces RXE-3 is never absent, but the field may
// legitimately be the literal `""`).
func BuildOMPO09Prescription(hospital *model.Hospital, p *model.Patient, o *model.PrescriptionOrder, ctx OrderContext, st Stamp) (*hl7.Message, error) {
	if p == nil {
		return nil, newProfileErr(MessageTypeOMPO09, "requires an existing Patient")
	}
	if o == nil {
		return nil, newProfileErr(MessageTypeOMPO09, "requires an existing PrescriptionOrder")
	}
	if ctx.PatientClass == "" {
		return nil, newProfileErr(MessageTypeOMPO09, "requires a patient-class admission context")
	}
	if err := checkEncodable(MessageTypeOMPO09, st.CharacterSet, p.LastName, p.FirstName); err != nil {
		return nil, err
	}

	segs := []*hl7.Segment{
		buildMSH(hospital, MessageTypeOMPO09, st),
		segment.BuildPID(p),
		segment.BuildORC(ctx.ORC, ctx.Requester),
		segment.BuildRXE(o),
		segment.BuildRXR(o.RouteCode, ""),
		segment.BuildTQ1(ctx.TQ1),
	}
	return assemble(segs...), nil
}

// BuildOMPO09Injection builds an injection order message. Injection orders
// carry 1..n components sharing one order number: each component renders
// as its own RXC segment rather than a separate order message.
//
// Grounded on messages/rde/rde_o11.py (injection branch), re-profiled here
// from RDE^O11 to OMP^O09.
func BuildOMPO09Injection(hospital *model.Hospital, p *model.Patient, o *model.InjectionOrder, ctx OrderContext, st Stamp) (*hl7.Message, error) {
	if p == nil {
		return nil, newProfileErr(MessageTypeOMPO09, "requires an existing Patient")
	}
	if o == nil {
		return nil, newProfileErr(MessageTypeOMPO09, "requires an existing InjectionOrder")
	}
	if len(o.Components) == 0 {
		return nil, newProfileErr(MessageTypeOMPO09, "injection order requires at least one component")
	}
	if ctx.PatientClass == "" {
		return nil, newProfileErr(MessageTypeOMPO09, "requires a patient-class admission context")
	}
	if err := checkEncodable(MessageTypeOMPO09, st.CharacterSet, p.LastName, p.FirstName); err != nil {
		return nil, err
	}

	segs := []*hl7.Segment{
		buildMSH(hospital, MessageTypeOMPO09, st),
		segment.BuildPID(p),
		segment.BuildORC(ctx.ORC, ctx.Requester),
		segment.BuildRXEForInjection(o),
	}
	for _, c := range o.Components {
		segs = append(segs, segment.BuildRXC(c))
	}
	segs = append(segs, segment.BuildRXR(o.RouteCode, o.RouteDeviceCode), segment.BuildTQ1(ctx.TQ1))
	return assemble(segs...), nil
}
