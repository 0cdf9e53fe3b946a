package model

import (
	"errors"
	"regexp"
)

var patientIDPattern = regexp.MustCompile(`^\w{6,250}$`)

// Allergy is one AL1 segment's worth of allergy data.
//
// Grounded on objects/patient.py::Allergy.
type Allergy struct {
	AllergyTypeCode  string
	AllergenCode     string
	AllergenName     string
	AllergenCodeSystem string
}

// NewAllergy validates and constructs an Allergy.
func NewAllergy(allergyTypeCode, allergenCode, allergenName, allergenCodeSystem string) (*Allergy, error) {
	if err := requireInTable("AllergyTypeCode", allergyTypeCode, AllergyTypeCode); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("AllergenCode", allergenCode); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("AllergenName", allergenName); err != nil {
		return nil, err
	}
	return &Allergy{
		AllergyTypeCode:    allergyTypeCode,
		AllergenCode:       allergenCode,
		AllergenName:       allergenName,
		AllergenCodeSystem: allergenCodeSystem,
	}, nil
}

// Insurance is one IN1 segment's worth of coverage data.
//
// Grounded on objects/patient.py::Insurance. insurance_plan_code "C0"
// (national health insurance) takes a 6-digit insurance number; every
// other plan code takes an 8-digit number whose first two digits must
// match an InsurancePlanExt key, and in that case plan type and company
// name become required fields.
type Insurance struct {
	InsurancePlanCode       string
	InsuranceNumber         string
	InsurancePlanType       string
	InsuranceCompanyName    string
	InsuranceClassification string
	EffectiveDate           string
	ExpirationDate          string
}

// NewInsurance validates and constructs an Insurance.
func NewInsurance(planCode, number, planType, companyName, classification, effective, expiration string) (*Insurance, error) {
	if err := requireInTable("InsurancePlanCode", planCode, InsurancePlan); err != nil {
		return nil, err
	}
	if planCode == "C0" {
		if err := requireDigitsMaxLen("InsuranceNumber", number, 6); err != nil {
			return nil, err
		}
	} else {
		if err := requireDigitsMaxLen("InsuranceNumber", number, 8); err != nil {
			return nil, err
		}
		if len(number) >= 2 && !contains(InsurancePlanExt, number[:2]) {
			return nil, newFieldErr("InsuranceNumber", "prefix %q is not a known insurer-number prefix", number[:2])
		}
		if err := requireNonEmpty("InsurancePlanType", planType); err != nil {
			return nil, err
		}
		if err := requireNonEmpty("InsuranceCompanyName", companyName); err != nil {
			return nil, err
		}
	}
	if err := requireInTable("InsurancePlanType", planType, InsurancePlanType); err != nil {
		return nil, err
	}
	return &Insurance{
		InsurancePlanCode:       planCode,
		InsuranceNumber:         number,
		InsurancePlanType:       planType,
		InsuranceCompanyName:    companyName,
		InsuranceClassification: classification,
		EffectiveDate:           effective,
		ExpirationDate:          expiration,
	}, nil
}

// Patient is the PID/PV2/AL1/IN1 subject of a generated record set.
//
// Grounded on objects/patient.py::Patient.
type Patient struct {
	PatientID     string
	Sex           string
	LastName      string
	FirstName     string
	LastNameKana  string
	FirstNameKana string
	DateOfBirth   string
	DeathIndicator string
	DeathDateTime string
	PostalCode    string
	Address       string
	HomePhone     string
	WorkPhone     string
	ABOBloodType  string
	RhBloodType   string
	HeightCM      float64
	WeightKG      float64
	DisabilityCode string
	Allergies     []*Allergy
	Insurances    []*Insurance
}

// NewPatient validates and constructs a Patient. deathIndicator, when
// non-empty, must be "Y" or "N"; PID-level validation only requires that a
// "Y" indicator carry a death date/time — whether an ADT^A08 message must
// also carry both fields together is a message-level concern (spec §4.D),
// not checked here.
func NewPatient(
	patientID, sex, lastName, firstName, lastNameKana, firstNameKana, dob string,
	deathIndicator, deathDateTime string,
	postalCode, address, homePhone, workPhone string,
	abo, rh string, heightCM, weightKG float64,
	allergies []*Allergy, insurances []*Insurance,
) (*Patient, error) {
	if !patientIDPattern.MatchString(patientID) {
		return nil, newFieldErr("PatientID", "must match %s, got %q", patientIDPattern.String(), patientID)
	}
	if err := requireInTable("Sex", sex, Sex); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("Sex", sex); err != nil {
		return nil, err
	}
	if len([]rune(lastName))+len([]rune(firstName)) >= 230 {
		return nil, errors.New("combined name length must be under 230 characters")
	}
	if deathIndicator != "" && deathIndicator != "Y" && deathIndicator != "N" {
		return nil, newFieldErr("DeathIndicator", `must be "Y", "N", or empty, got %q`, deathIndicator)
	}
	if deathIndicator == "Y" {
		if err := requireNonEmpty("DeathDateTime", deathDateTime); err != nil {
			return nil, err
		}
	}
	if err := requireMaxLen("Address", address, 235); err != nil {
		return nil, err
	}
	if err := requireMaxLen("HomePhone", homePhone, 250); err != nil {
		return nil, err
	}
	if err := requireMaxLen("WorkPhone", workPhone, 250); err != nil {
		return nil, err
	}
	if heightCM < 0 || heightCM > 300 {
		return nil, newFieldErr("HeightCM", "must be within [0, 300], got %v", heightCM)
	}
	if weightKG < 0 || weightKG > 500 {
		return nil, newFieldErr("WeightKG", "must be within [0, 500], got %v", weightKG)
	}
	return &Patient{
		PatientID:      patientID,
		Sex:            sex,
		LastName:       lastName,
		FirstName:      firstName,
		LastNameKana:   lastNameKana,
		FirstNameKana:  firstNameKana,
		DateOfBirth:    dob,
		DeathIndicator: deathIndicator,
		DeathDateTime:  deathDateTime,
		PostalCode:     postalCode,
		Address:        address,
		HomePhone:      homePhone,
		WorkPhone:      workPhone,
		ABOBloodType:   abo,
		RhBloodType:    rh,
		HeightCM:       heightCM,
		WeightKG:       weightKG,
		Allergies:      allergies,
		Insurances:     insurances,
	}, nil
}

// IsDead reports whether the patient's death indicator is set.
func (p *Patient) IsDead() bool { return p.DeathIndicator == "Y" }

// SetDisabilityCode attaches an optional DB1-3 disability code, synthesized
// separately from the rest of the demographic attributes (most patients
// carry none, so it is not a NewPatient constructor parameter).
func (p *Patient) SetDisabilityCode(code string) { p.DisabilityCode = code }
