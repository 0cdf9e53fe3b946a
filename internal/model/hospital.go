package model

// Hospital identifies the sending facility, carried in MSH-4 and EVN-7.
//
// Grounded on objects/hospital.py::Hospital. The generator always produces
// a single fixed facility name, matching the original's hard-coded
// "日本医療情報推進病院" — a generated corpus simulates one institution's
// export, not a multi-site feed.
type Hospital struct {
	FacilityID string
	Name       string
	PostalCode string
	Address    string
	Phone      string
}

// NewHospital validates and constructs a Hospital.
func NewHospital(facilityID, name, postalCode, address, phone string) (*Hospital, error) {
	if err := requireNonEmpty("FacilityID", facilityID); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("Name", name); err != nil {
		return nil, err
	}
	if err := requireMaxLen("Name", name, 250); err != nil {
		return nil, err
	}
	if len([]rune(address))+len([]rune(postalCode)) >= 230 {
		return nil, newFieldErr("Address", "address plus postal code must be under 230 characters")
	}
	if err := requireMaxLen("Phone", phone, 230); err != nil {
		return nil, err
	}
	return &Hospital{FacilityID: facilityID, Name: name, PostalCode: postalCode, Address: address, Phone: phone}, nil
}

// DefaultHospitalName is the fixed facility name every generated message
// set is attributed to.
const DefaultHospitalName = "日本医療情報推進病院"

// DefaultFacilityID is the fixed sending/receiving facility identifier
// (MSH-4/MSH-6) for every generated message set.
const DefaultFacilityID = "JP0000001"
