package segment

import (
	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
)

// BuildPID builds the patient identification segment. PID-29/PID-30 (death
// date/time and death indicator) are passed through whatever the Patient
// carries; whether ADT^A08 requires both present together is a
// message-level concern enforced in internal/message, not here — a
// segment builder must not reject a value legal in some other message.
//
// PID-5 carries the ideographic name and the phonetic (kana) name as two
// repetitions of the same field, tagged with name-type code L (legal) and
// representation code I (ideographic) or P (phonetic); PID-6 (mother's
// maiden name in the base v2.5 table) stays absent.
//
// Grounded on segments/pid.py.
func BuildPID(p *model.Patient) *hl7.Segment {
	seg := hl7.NewSegment("PID")
	seg.Set(1, "0001")
	seg.Set(3, p.PatientID)
	ideographic := hl7.Component(hl7.Escape(p.LastName), hl7.Escape(p.FirstName), "", "", "", "", "L", "I")
	phonetic := hl7.Component(hl7.Escape(p.LastNameKana), hl7.Escape(p.FirstNameKana), "", "", "", "", "L", "P")
	seg.Set(5, hl7.Repeat(ideographic, phonetic))
	seg.Set(7, p.DateOfBirth)
	seg.Set(8, p.Sex)
	seg.Set(11, hl7.Component("", "", "", "", p.PostalCode, "JPN", "H", hl7.Escape(p.Address)))
	seg.Set(13, hl7.Component("", "PRN", "PH", "", "", "", "", "", "", "", "", hl7.Escape(p.HomePhone)))
	seg.Set(14, hl7.Component("", "WPN", "PH", "", "", "", "", "", "", "", "", hl7.Escape(p.WorkPhone)))
	seg.Set(29, p.DeathDateTime)
	seg.Set(30, p.DeathIndicator)
	return seg
}
