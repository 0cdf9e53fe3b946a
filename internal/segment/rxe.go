package segment

import (
	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
)

// BuildRXE builds the pharmacy/treatment encoded order segment for a
// prescription order. RXE-3 (minimum dose) carries whatever hl7.Field the
// order was constructed with — Present, Absent, or the literal `""`
// sentinel — unchanged; this builder never substitutes a value for it.
//
// Grounded on segments/rxe.py.
func BuildRXE(o *model.PrescriptionOrder) *hl7.Segment {
	seg := hl7.NewSegment("RXE")
	seg.Set(1, "")
	seg.Set(2, hl7.Component(o.DrugCode, "", o.DrugCodeSystem))
	seg.SetField(3, o.MinimumDose)
	seg.Set(5, o.DoseUnitCode)
	seg.Set(6, o.DosageFormCode)
	seg.Set(10, o.DispenseAmount)
	seg.Set(11, o.DispenseUnitCode)
	seg.Set(15, o.PrescriptionNumber)
	return seg
}

// BuildRXEForInjection builds the RXE segment for an injection order,
// which shares the segment shape but draws from InjectionOrder's narrower
// field set (no dosage form, no prescription number).
//
// Grounded on segments/rxe.py (injection branch).
func BuildRXEForInjection(o *model.InjectionOrder) *hl7.Segment {
	seg := hl7.NewSegment("RXE")
	seg.Set(1, "")
	seg.SetField(3, o.MinimumDose)
	seg.Set(5, o.DoseUnitCode)
	seg.Set(10, o.DispenseAmount)
	return seg
}
