package source

import "strings"

// DefaultDxCode and DefaultDxCodeSystem are the fallback diagnosis code and
// code system used when a row's mdcdx2 column is empty.
//
// Grounded on preprocessing/preprocess_main.py's diagnosis branch
// (record_type == 2): dx_code defaults to "99999999"/"99XYZ"; when mdcdx2
// is present, the code system is "MDCDX2" only if the code is the
// standard 8 characters long, else it falls back to "99XYZ" too.
const (
	DefaultDxCode       = "99999999"
	DefaultDxCodeSystem = "99XYZ"
	mdcdx2CodeSystem    = "MDCDX2"
	mdcdx2Length        = 8
)

// DiagnosisCode derives PRB-3's code and code system from a row's mdcdx2
// column.
func DiagnosisCode(mdcdx2 string) (code, codeSystem string) {
	if mdcdx2 == "" {
		return DefaultDxCode, DefaultDxCodeSystem
	}
	if len(mdcdx2) == mdcdx2Length {
		return mdcdx2, mdcdx2CodeSystem
	}
	return mdcdx2, DefaultDxCodeSystem
}

// DefaultDrugCode and DefaultDrugCodeSystem are the fallback drug code and
// code system used when a row's hot column is empty.
//
// Grounded on preprocess_main.py's prescription/injection branches: an
// empty hot column falls back to "999999"/"99XYZ"; a present HOT code's
// system name encodes the code's own length, "HOT" + len(code), since HOT
// codes come in more than one fixed width depending on drug/package level.
const (
	DefaultDrugCode       = "999999"
	DefaultDrugCodeSystem = "99XYZ"
)

// DrugCode derives a drug order's code and code system from a row's hot
// column.
func DrugCode(hot string) (code, codeSystem string) {
	if hot == "" {
		return DefaultDrugCode, DefaultDrugCodeSystem
	}
	return hot, "HOT" + itoa(len(hot))
}

// DefaultName is the placeholder diagnosis/drug/component display name used
// whenever a row's text column is empty.
//
// Grounded on preprocess_main.py, which fills every blank "text" column
// with "名称未設定" ("name not set") rather than leaving the display name
// empty on the wire.
const DefaultName = "名称未設定"

// Name returns text, or DefaultName when text is empty.
func Name(text string) string {
	if text == "" {
		return DefaultName
	}
	return text
}

// DefaultSpecimenCode is JLAC10's "その他の検体" (other specimen) code,
// used whenever a row's jlac10 column isn't the full 17-character form the
// specimen-code slice is drawn from.
const (
	DefaultSpecimenCode       = "990"
	validJLAC10Length         = 17
	jlac10SpecimenSliceStart  = 9
	jlac10SpecimenSliceEnd    = 12
	observationCodeSystemJC10 = "JC10"
)

// SpecimenCode derives a lab result's specimen grouping code from its
// jlac10 column: the standard's specimen-type digits, jlac10[9:12], when
// the code is the full 17 characters, else the "other" fallback.
//
// Grounded on preprocess_main.py's lab-result branch:
// t["specimen"] = "990"; t.loc[valid_jlac10, "specimen"] = jlac10[9:12].
func SpecimenCode(jlac10 string) string {
	if len(jlac10) != validJLAC10Length {
		return DefaultSpecimenCode
	}
	return jlac10[jlac10SpecimenSliceStart:jlac10SpecimenSliceEnd]
}

// ObservationCodeSystem reports whether a lab observation's code system is
// the full JLAC10 catalog or the local fallback, based on whether jlac10 is
// present at its standard 17-character width.
func ObservationCodeSystem(jlac10 string) string {
	if len(jlac10) == validJLAC10Length {
		return observationCodeSystemJC10
	}
	return DefaultDrugCodeSystem // "99XYZ", the same local-code-system fallback used elsewhere
}

// itoa avoids importing strconv solely for this single small conversion
// site; kept local since every other integer-to-string need in this
// package already goes through strconv for parsing symmetry.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	return string(b)
}

// baseComponentKeywords is a representative subset of the original's
// base-solution keyword list (generate_random_injection_component):
// component names containing one of these are classified as the injection
// order's base solution (RXC component type "B"); everything else is an
// additive (type "A").
var baseComponentKeywords = []string{
	"生食", "生理食塩", "ブドウ糖", "注射用水", "蒸留水",
	"ソリタ", "リンゲル", "ラクテック", "ソルデム", "フィジオ", "ビーフリード",
}

// InjectionComponentType classifies a component's display name as base
// solution ("B") or additive ("A").
func InjectionComponentType(name string) string {
	for _, kw := range baseComponentKeywords {
		if strings.Contains(name, kw) {
			return "B"
		}
	}
	return "A"
}

// prescriptionDoseUnitKeywords and prescriptionRouteKeywords classify a
// drug's display name into MERIT-9 dose-unit, dosage-form, and
// administration-route codes, mirroring
// random_data/drugs.py::NAME_TO_PRESCRIPTION_UNIT/NAME_TO_DOSE_FORM/
// NAME_TO_PRESCRIPTION_ROUTE, narrowed to the code tables this module
// actually carries (internal/model.DoseUnit, DosageForm, RouteCode).
// Order matters: the first matching keyword wins, exactly as in the
// original.
type doseFormRule struct {
	keywords   []string
	doseUnit   string
	dosageForm string
	route      string
}

var doseFormRules = []doseFormRule{
	{[]string{"錠"}, "錠", "100", "PO"},
	{[]string{"カプセル", "Cap", "cap"}, "カプセル", "400", "PO"},
	{[]string{"散", "原末", "粉末", "顆粒"}, "包", "200", "PO"},
	{[]string{"シロップ", "内服液", "内用液"}, "mL", "600", "PO"},
	{[]string{"坐剤", "坐薬"}, "錠", "900", "PR"},
	{[]string{"膏", "クリーム"}, "", "810", "TOP"},
	{[]string{"注射", "注"}, "mL", "700", "IV"},
}

// ClassifyDrugName infers a prescription order's dose-unit, dosage-form,
// and route codes from its drug display name, falling back to "mg"/""/"PO"
// when nothing matches. The dosage-form "ointment" case intentionally
// leaves doseUnitCode empty: an ointment's total daily dose isn't
// well-defined, matching the original's minimum-dose-undetermined case.
func ClassifyDrugName(drugName string) (doseUnitCode, dosageFormCode, routeCode string) {
	for _, rule := range doseFormRules {
		for _, kw := range rule.keywords {
			if strings.Contains(drugName, kw) {
				return rule.doseUnit, rule.dosageForm, rule.route
			}
		}
	}
	return "mg", "", "PO"
}

// IsOintment reports whether a dosage-form code is one of the forms whose
// minimum dose is undefined (spec §8's "ointment with undetermined minimum
// dose" scenario), and therefore must render RXE-3 as the literal `""`
// rather than a numeric dose.
func IsOintment(dosageFormCode string) bool {
	return dosageFormCode == "810" || dosageFormCode == "820"
}
