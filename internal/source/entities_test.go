package source

import "testing"

func TestDiagnosisCode(t *testing.T) {
	if code, sys := DiagnosisCode(""); code != DefaultDxCode || sys != DefaultDxCodeSystem {
		t.Errorf("DiagnosisCode(\"\") = %q, %q", code, sys)
	}
	if code, sys := DiagnosisCode("12345678"); code != "12345678" || sys != "MDCDX2" {
		t.Errorf("DiagnosisCode(8-char) = %q, %q, want MDCDX2", code, sys)
	}
	if _, sys := DiagnosisCode("123"); sys != DefaultDxCodeSystem {
		t.Errorf("DiagnosisCode(short) code system = %q, want %q", sys, DefaultDxCodeSystem)
	}
}

func TestDrugCode(t *testing.T) {
	if code, sys := DrugCode(""); code != DefaultDrugCode || sys != DefaultDrugCodeSystem {
		t.Errorf("DrugCode(\"\") = %q, %q", code, sys)
	}
	if _, sys := DrugCode("1234567"); sys != "HOT7" {
		t.Errorf("DrugCode system = %q, want HOT7", sys)
	}
}

func TestSpecimenCode(t *testing.T) {
	if got := SpecimenCode("123456789012345678"); got != DefaultSpecimenCode {
		t.Errorf("SpecimenCode(too long) = %q, want %q", got, DefaultSpecimenCode)
	}
	jlac10 := "1234567890123456AB" // 18 chars, still wrong length
	if got := SpecimenCode(jlac10); got != DefaultSpecimenCode {
		t.Errorf("SpecimenCode(%d chars) = %q, want default", len(jlac10), got)
	}
	exact17 := "12345678901234567"
	if len(exact17) != 17 {
		t.Fatal("fixture is not 17 characters")
	}
	if got := SpecimenCode(exact17); got != exact17[9:12] {
		t.Errorf("SpecimenCode(17 chars) = %q, want %q", got, exact17[9:12])
	}
}

func TestClassifyDrugNameOintment(t *testing.T) {
	unit, form, route := ClassifyDrugName("ワセリン軟膏")
	if form != "810" || route != "TOP" {
		t.Errorf("ClassifyDrugName(ointment) = %q %q %q", unit, form, route)
	}
	if !IsOintment(form) {
		t.Error("IsOintment(810) = false, want true")
	}
}

func TestInjectionComponentType(t *testing.T) {
	if got := InjectionComponentType("生理食塩水"); got != "B" {
		t.Errorf("InjectionComponentType(saline) = %q, want B", got)
	}
	if got := InjectionComponentType("抗生剤"); got != "A" {
		t.Errorf("InjectionComponentType(antibiotic) = %q, want A", got)
	}
}
