package model

import "testing"

func TestNewPatientValid(t *testing.T) {
	p, err := NewPatient(
		"P000123456", "M", "仮山田", "太郎", "カリやまだ", "たろう", "19800101",
		"", "",
		"100-0001", "東京都千代田区千代田1-1", "03-0000-0000", "",
		"A", "+", 172.0, 65.0, nil, nil,
	)
	if err != nil {
		t.Fatalf("NewPatient returned error: %v", err)
	}
	if p.PatientID != "P000123456" {
		t.Errorf("PatientID = %q", p.PatientID)
	}
}

func TestNewPatientRejectsBadID(t *testing.T) {
	_, err := NewPatient(
		"ab", "M", "仮山田", "太郎", "カリやまだ", "たろう", "19800101",
		"", "", "", "", "", "", "", "", 0, 0, nil, nil,
	)
	if err == nil {
		t.Fatal("expected error for too-short patient ID")
	}
}

func TestNewPatientRejectsUnknownSex(t *testing.T) {
	_, err := NewPatient(
		"P000123456", "X", "仮山田", "太郎", "カリやまだ", "たろう", "19800101",
		"", "", "", "", "", "", "", "", 0, 0, nil, nil,
	)
	if err == nil {
		t.Fatal("expected error for unknown sex code")
	}
}

func TestNewInsuranceNationalHealth(t *testing.T) {
	ins, err := NewInsurance("C0", "123456", "1", "", "", "20260101", "20270101")
	if err != nil {
		t.Fatalf("NewInsurance returned error: %v", err)
	}
	if ins.InsuranceNumber != "123456" {
		t.Errorf("InsuranceNumber = %q", ins.InsuranceNumber)
	}
}

func TestNewInsuranceOtherPlanRequiresCompanyName(t *testing.T) {
	_, err := NewInsurance("A0", "01234567", "1", "", "", "20260101", "20270101")
	if err == nil {
		t.Fatal("expected error for missing company name on non-C0 plan")
	}
}

func TestNewPatientDeathIndicatorRequiresDate(t *testing.T) {
	_, err := NewPatient(
		"P000123456", "M", "仮山田", "太郎", "カリやまだ", "たろう", "19800101",
		"Y", "",
		"", "", "", "", "", "", 0, 0, nil, nil,
	)
	if err == nil {
		t.Fatal("expected error when death indicator is Y but death date is absent")
	}
}

func TestNewAllergyRejectsUnknownType(t *testing.T) {
	_, err := NewAllergy("ZZ", "X123", "sample allergen", "99XYZ")
	if err == nil {
		t.Fatal("expected error for unknown allergy type code")
	}
}
