package message

import (
	"strings"
	"testing"

	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
	"github.com/gyeh/ssmixtwins/internal/segment"
)

func testHospital(t *testing.T) *model.Hospital {
	t.Helper()
	h, err := model.NewHospital("JP0000001", model.DefaultHospitalName, "", "", "")
	if err != nil {
		t.Fatalf("NewHospital: %v", err)
	}
	return h
}

func testPatient(t *testing.T) *model.Patient {
	t.Helper()
	p, err := model.NewPatient(
		"P000123456", "M", "仮山田", "太郎", "カリやまだ", "たろう", "19800101",
		"", "",
		"100-0001", "東京都千代田区千代田99丁目1番1号", "03-0000-0000", "",
		"A", "+", 172.0, 65.0, nil, nil,
	)
	if err != nil {
		t.Fatalf("NewPatient: %v", err)
	}
	return p
}

func TestBuildADTA08RequiresPatient(t *testing.T) {
	_, err := BuildADTA08(testHospital(t), nil, ADTA08Params{}, Stamp{ControlID: "C1", MessageTime: "20260101120000", CharacterSet: hl7.ShiftJIS})
	if err == nil {
		t.Fatal("expected profile error when Patient is nil")
	}
}

func TestBuildADTA08EmitsMSH125(t *testing.T) {
	msg, err := BuildADTA08(testHospital(t), testPatient(t), ADTA08Params{}, Stamp{ControlID: "C1", MessageTime: "20260101120000", CharacterSet: hl7.ShiftJIS})
	if err != nil {
		t.Fatalf("BuildADTA08: %v", err)
	}
	rendered := msg.Render()
	if !strings.HasPrefix(rendered, "MSH|") {
		t.Errorf("rendered message does not start with MSH: %q", rendered)
	}
	mshSeg := strings.SplitN(rendered, hl7.SegmentTerm, 2)[0]
	mshFields := strings.Split(mshSeg, "|")
	// mshFields[0] is the literal "MSH"; mshFields[n] is MSH-(n+1) since
	// MSH-1 (the separator) is consumed by the split itself.
	if got := mshFields[1]; got != hl7.EncodingChars {
		t.Errorf("MSH-2 = %q, want %q", got, hl7.EncodingChars)
	}
	if got := mshFields[8]; got != "ADT^A08^ADT_A01" {
		t.Errorf("MSH-9 = %q, want %q", got, "ADT^A08^ADT_A01")
	}
	if got := mshFields[11]; got != "2.5" {
		t.Errorf("MSH-12 = %q, want %q", got, "2.5")
	}
	if got := mshFields[17]; got != "~ISO IR87" {
		t.Errorf("MSH-18 = %q, want %q", got, "~ISO IR87")
	}
	if got := mshFields[19]; got != "ISO 2022-1994" {
		t.Errorf("MSH-20 = %q, want %q", got, "ISO 2022-1994")
	}
	for _, seg := range strings.Split(strings.TrimSuffix(rendered, hl7.SegmentTerm), hl7.SegmentTerm) {
		if strings.Contains(seg, "\n") {
			t.Errorf("segment %q contains a bare newline", seg)
		}
	}
}

func TestBuildOMPO09PrescriptionLiteralMinimumDose(t *testing.T) {
	order, err := model.NewPrescriptionOrder(
		"3319400A2025", "YJ", hl7.LiteralEmptyQuote(),
		"g", "810", "20", "g", "RX0001",
		"TOP", "NW",
		"1", "", "01", "001",
	)
	if err != nil {
		t.Fatalf("NewPrescriptionOrder: %v", err)
	}
	ctx := OrderContext{
		PatientClass: "O",
		ORC: segment.ORCParams{
			OrderControl:         "NW",
			RequesterOrderNumber: "000000000000001",
			OrderStatus:          "CM",
			OrderDateTime:        "20260101120000",
		},
	}
	msg, err := BuildOMPO09Prescription(testHospital(t), testPatient(t), order, ctx, Stamp{ControlID: "C2", MessageTime: "20260101120000", CharacterSet: hl7.ShiftJIS})
	if err != nil {
		t.Fatalf("BuildOMPO09Prescription: %v", err)
	}
	rendered := msg.Render()
	if !strings.Contains(rendered, `""`) {
		t.Errorf("rendered ointment order missing literal quote RXE-3: %q", rendered)
	}
}

func TestBuildOMPO09InjectionRequiresComponents(t *testing.T) {
	order := &model.InjectionOrder{}
	_, err := BuildOMPO09Injection(testHospital(t), testPatient(t), order, OrderContext{PatientClass: "I"}, Stamp{CharacterSet: hl7.ShiftJIS})
	if err == nil {
		t.Fatal("expected profile error for injection order with no components")
	}
}

func TestControlIDGeneratorDeterministic(t *testing.T) {
	g1 := NewControlIDGenerator(42, 0)
	g2 := NewControlIDGenerator(42, 0)
	if g1.Next() != g2.Next() {
		t.Error("same seed/worker should produce identical control IDs")
	}
}
