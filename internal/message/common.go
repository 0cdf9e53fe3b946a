package message

import (
	"fmt"

	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
	"github.com/gyeh/ssmixtwins/internal/segment"
)

// ProfileError reports a message-level requiredness or domain violation —
// spec §7's "profile error" kind, which always indicates a programming
// bug (the caller assembled an entity combination no profile permits)
// rather than bad input data.
type ProfileError struct {
	MessageType string
	Reason      string
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("%s: %s", e.MessageType, e.Reason)
}

func newProfileErr(messageType, reason string, args ...any) error {
	return &ProfileError{MessageType: messageType, Reason: fmt.Sprintf(reason, args...)}
}

// Stamp carries the per-message context every message builder needs to
// fill in MSH: the control ID, the event timestamp, and the declared
// character set.
type Stamp struct {
	ControlID    string
	MessageTime  string
	CharacterSet hl7.CharacterSet
}

// messageStructure maps each trigger event this generator emits to its HL7
// message-structure ID, MSH-9's third component (msh.py emits
// "ADT^A08^ADT_A01", not the bare two-component trigger-event code).
var messageStructure = map[string]string{
	MessageTypeADTA01: "ADT_A01",
	MessageTypeADTA03: "ADT_A03",
	MessageTypeADTA08: "ADT_A01",
	MessageTypeOMPO09: "OMP_O09",
	MessageTypeOMLO33: "OML_O33",
	MessageTypePPRZD1: "PPR_ZD1",
}

func buildMSH(hospital *model.Hospital, messageType string, s Stamp) *hl7.Segment {
	msh9 := messageType
	if structure, ok := messageStructure[messageType]; ok {
		msh9 = messageType + "^" + structure
	}
	return segment.BuildMSH(hospital, segment.MSHParams{
		MessageType: msh9,
		ControlID:   s.ControlID,
		MessageTime: s.MessageTime,
	})
}

// checkEncodable verifies every free-text value the message carries is
// representable in the declared character set, surfacing spec §7's
// encoding error as a profile error rather than writing a mojibake byte
// sequence.
func checkEncodable(messageType string, cs hl7.CharacterSet, values ...string) error {
	for _, v := range values {
		if v == "" {
			continue
		}
		if !hl7.Encodable(v, cs) {
			return newProfileErr(messageType, "value %q is not representable in character set %s", v, cs)
		}
	}
	return nil
}

func assemble(segments ...*hl7.Segment) *hl7.Message {
	return &hl7.Message{Segments: segments}
}

// requireTable checks that a required, message-level code falls within a
// code table, returning a plain error the caller wraps as a ProfileError.
func requireTable(table map[string]string, code string) error {
	if code == "" {
		return fmt.Errorf("is required")
	}
	if _, ok := table[code]; !ok {
		return fmt.Errorf("code %q is not in the allowed code table", code)
	}
	return nil
}
