package segment

import (
	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
)

// PV1Params carries the event-level timing a patient visit segment needs
// beyond the static Admission entity (admit/discharge datetime belong to
// the triggering ADT event, not the encounter's own attributes).
type PV1Params struct {
	PatientClass         string // "I" inpatient, "O" outpatient
	VisitNumber          string
	AdmitDateTime        string
	DischargeDateTime    string
	DischargeDisposition string
}

// BuildPV1 builds the patient visit segment.
//
// Grounded on segments/pv1.py.
func BuildPV1(a *model.Admission, p PV1Params) *hl7.Segment {
	seg := hl7.NewSegment("PV1")
	seg.Set(1, "1")
	seg.Set(2, p.PatientClass)
	seg.Set(3, hl7.Component(hl7.Escape(a.Ward), hl7.Escape(a.Room), hl7.Escape(a.Bed)))
	seg.Set(7, hl7.Component(a.Physician.PhysicianID, hl7.Escape(a.Physician.LastName), hl7.Escape(a.Physician.FirstName)))
	seg.Set(10, a.DepartmentCode)
	seg.Set(19, p.VisitNumber)
	seg.Set(36, p.DischargeDisposition)
	seg.Set(44, p.AdmitDateTime)
	seg.Set(45, p.DischargeDateTime)
	return seg
}
