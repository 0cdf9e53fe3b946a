package segment

import (
	"strings"
	"testing"

	"github.com/gyeh/ssmixtwins/internal/hl7"
	"github.com/gyeh/ssmixtwins/internal/model"
)

func TestBuildMSHStampsEncodingChars(t *testing.T) {
	hospital, err := model.NewHospital("JP0000001", "日本医療情報推進病院", "", "", "")
	if err != nil {
		t.Fatalf("NewHospital: %v", err)
	}
	seg := BuildMSH(hospital, MSHParams{
		MessageType: "ADT^A08^ADT_A01",
		ControlID:   "CTRL1",
		MessageTime: "20260101120000",
	})
	rendered := seg.Render()
	if !strings.HasPrefix(rendered, "MSH|"+hl7.EncodingChars+"|") {
		t.Errorf("Render() = %q, want MSH-1/MSH-2 prefix", rendered)
	}
	fields := strings.Split(rendered, "|")
	if got := fields[11]; got != "2.5" {
		t.Errorf("MSH-12 = %q, want %q", got, "2.5")
	}
	if got := fields[8]; got != "ADT^A08^ADT_A01" {
		t.Errorf("MSH-9 = %q, want %q", got, "ADT^A08^ADT_A01")
	}
	if got := fields[17]; got != "~ISO IR87" {
		t.Errorf("MSH-18 = %q, want %q", got, "~ISO IR87")
	}
	if got := fields[19]; got != "ISO 2022-1994" {
		t.Errorf("MSH-20 = %q, want %q", got, "ISO 2022-1994")
	}
}

func TestBuildAL1EncodesAllergenComponents(t *testing.T) {
	allergy, err := model.NewAllergy("DA", "D001", "ペニシリン", "99XYZ")
	if err != nil {
		t.Fatalf("NewAllergy: %v", err)
	}
	seg := BuildAL1(1, allergy)
	rendered := seg.Render()
	if !strings.Contains(rendered, "D001^") {
		t.Errorf("Render() = %q, want allergen code component", rendered)
	}
}

func TestBuildRXEPreservesLiteralQuoteMinimumDose(t *testing.T) {
	order, err := model.NewInjectionOrder(
		"01", hl7.LiteralEmptyQuote(),
		"mL", "", "", "",
		"IV", "IVP",
		[]*model.InjectionComponent{mustComponent(t)}, "NW",
		"4", "", "01", "001",
	)
	if err != nil {
		t.Fatalf("NewInjectionOrder: %v", err)
	}
	seg := BuildRXEForInjection(order)
	rendered := seg.Render()
	if !strings.Contains(rendered, `""`) {
		t.Errorf("Render() = %q, want literal quote sentinel for RXE-3", rendered)
	}
}

func mustComponent(t *testing.T) *model.InjectionComponent {
	t.Helper()
	c, err := model.NewInjectionComponent("B", "3319400A2025", "生食100mL", "100", "mL")
	if err != nil {
		t.Fatalf("NewInjectionComponent: %v", err)
	}
	return c
}
