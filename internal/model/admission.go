package model

// Admission carries the ward/room/bed assignment and attending physician
// for PV1, used by both the admit/discharge ADT builders and the closing
// demographic snapshot.
//
// Grounded on objects/admission.py::Admission.
type Admission struct {
	Physician      *Physician
	Ward           string
	Room           string
	Bed            string
	DepartmentCode string
}

// NewAdmission validates and constructs an Admission. DepartmentCode is
// derived from the physician's department, mirroring the original's
// assumption that a ward assignment inherits its department from whoever
// is attending.
func NewAdmission(physician *Physician, ward, room, bed string) (*Admission, error) {
	if physician == nil {
		return nil, newFieldErr("Physician", "is required")
	}
	if err := requireNonEmpty("Ward", ward); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("Room", room); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("Bed", bed); err != nil {
		return nil, err
	}
	if len(ward)+len(room)+len(bed) >= 70 {
		return nil, newFieldErr("Ward", "combined ward/room/bed length must be under 70 characters")
	}
	return &Admission{
		Physician:      physician,
		Ward:           ward,
		Room:           room,
		Bed:            bed,
		DepartmentCode: physician.DepartmentCode,
	}, nil
}
