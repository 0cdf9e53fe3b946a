// Package segment builds one HL7 segment at a time from domain entities.
// Each builder is a pure function: given the entities and context it
// needs, it returns a fully populated *hl7.Segment with no message-level
// knowledge (cross-segment requiredness checks live in internal/message).
//
// Grounded file-for-file on original_source/ssmixtwins/src/segments/*.py.
package segment

import (
	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
)

// MSHParams carries everything BuildMSH needs beyond the hospital identity.
type MSHParams struct {
	MessageType string // e.g. "ADT^A08^ADT_A01" — trigger event plus message structure
	ControlID   string
	MessageTime string // YYYYMMDDHHMMSS
}

// BuildMSH builds the message header segment. MSH-18/MSH-20 declare the
// profile's fixed SS-MIX2 character repertoire (ISO-IR-87 under ISO
// 2022-1994 escape switching) regardless of which character set the run
// actually encodes message text in — that choice is enforced separately,
// against the declared repertoire, not written into MSH itself.
//
// Grounded on segments/msh.py.
func BuildMSH(hospital *model.Hospital, p MSHParams) *hl7.Segment {
	seg := hl7.NewSegment("MSH")
	seg.Set(2, hl7.EncodingChars)
	seg.Set(3, hl7.Escape(hospital.Name))
	seg.Set(4, hl7.Escape(hospital.FacilityID))
	seg.Set(5, hl7.Escape(hospital.Name))
	seg.Set(6, hl7.Escape(hospital.FacilityID))
	seg.Set(7, p.MessageTime)
	seg.Set(9, p.MessageType)
	seg.Set(10, p.ControlID)
	seg.Set(11, "P")
	seg.Set(12, "2.5")
	seg.Set(18, "~ISO IR87")
	seg.Set(20, "ISO 2022-1994")
	return seg
}
