package synth

import "github.com/gyeh/ssmixtwins/internal/model"

// Fixed catalogs the generator draws from to synthesize ward/bed/room
// assignments and allergy records.
//
// Grounded on original_source/ssmixtwins/src/random_data/random.py.
var (
	Wards = []string{
		"1A", "1B", "2A", "2B", "3A", "3B", "4A", "4B",
		"5A", "5B", "6A", "6B", "7A", "7B", "8A", "8B",
		"9A", "9B", "10A", "10B", "11A", "11B", "12A", "12B",
	}
	Beds  = []string{"1", "2", "3", "4"}
	Rooms = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
)

// AllergyCatalogEntry is a fixed allergen record the generator draws from
// when synthesizing a patient's allergy list.
type AllergyCatalogEntry struct {
	AllergyTypeCode    string
	AllergenCode       string
	AllergenName       string
	AllergenCodeSystem string
}

// AllergyCatalog mirrors RANDOM_ALLERGIES: a small fixed set spanning drug,
// food, pollen, animal, plant, environmental, and miscellaneous allergy
// types.
var AllergyCatalog = []AllergyCatalogEntry{
	{"DA", "D001", "ペニシリン", "99XYZ"},
	{"DA", "D002", "アスピリン", "99XYZ"},
	{"DA", "D003", "セフェム系抗生剤", "99XYZ"},
	{"DA", "D004", "造影剤", "99XYZ"},
	{"FA", "F001", "卵", "J-FAGY"},
	{"FA", "F002", "乳", "J-FAGY"},
	{"FA", "F003", "小麦", "J-FAGY"},
	{"FA", "F004", "そば", "J-FAGY"},
	{"FA", "F005", "落花生", "J-FAGY"},
	{"LA", "L001", "スギ花粉", "99XYZ"},
	{"LA", "L002", "ヒノキ花粉", "99XYZ"},
	{"AA", "A001", "ネコ", "99XYZ"},
	{"AA", "A002", "イヌ", "99XYZ"},
	{"PA", "P001", "ラテックス", "99XYZ"},
	{"MC", "M001", "ヨード造影剤禁忌", "99XYZ"},
}

// allergyCountWeights is the weighted distribution of how many allergies a
// synthesized patient gets: mostly zero, occasionally several.
var allergyCountWeights = []float64{0.5, 0.2, 0.2, 0.05, 0.05}

// RandomAllergyCount draws a count in [0, len(allergyCountWeights)-1] from
// the fixed weight distribution.
func (g *Generator) RandomAllergyCount() int {
	return g.weightedIndex(allergyCountWeights)
}

// RandomAllergy draws one entry from AllergyCatalog.
func (g *Generator) RandomAllergy() AllergyCatalogEntry {
	return AllergyCatalog[g.rng.IntN(len(AllergyCatalog))]
}

// aboWeights mirrors RANDOM_ABO_BLOOD_TYPES: A 40%, B 30%, AB 10%, O 20%,
// unknown (empty) 0% — kept as a fifth bucket so the weight table stays a
// literal transcription of the source even though it never fires.
var aboBloodTypes = []string{"A", "B", "AB", "O", ""}
var aboWeights = []float64{0.4, 0.3, 0.1, 0.2, 0.0}

// RandomABOBloodType draws an ABO blood type from the fixed distribution.
func (g *Generator) RandomABOBloodType() string {
	return aboBloodTypes[g.weightedIndex(aboWeights)]
}

// RandomRhBloodType returns "+" 99.5% of the time, "-" otherwise.
func (g *Generator) RandomRhBloodType() string {
	if g.rng.Float64() < 0.995 {
		return "+"
	}
	return "-"
}

// RandomDepartmentCode draws a department code from model.DepartmentCode.
func (g *Generator) RandomDepartmentCode() string {
	codes := make([]string, 0, len(model.DepartmentCode))
	for code := range model.DepartmentCode {
		codes = append(codes, code)
	}
	sortStrings(codes)
	return codes[g.rng.IntN(len(codes))]
}

// RandomWard, RandomBed, RandomRoom draw a ward/bed/room assignment.
func (g *Generator) RandomWard() string { return Wards[g.rng.IntN(len(Wards))] }
func (g *Generator) RandomBed() string  { return Beds[g.rng.IntN(len(Beds))] }
func (g *Generator) RandomRoom() string { return Rooms[g.rng.IntN(len(Rooms))] }

// RandomRouteAdminDevice draws a route administration device code from
// model.RouteAdminDevice.
func (g *Generator) RandomRouteAdminDevice() string {
	codes := make([]string, 0, len(model.RouteAdminDevice))
	for code := range model.RouteAdminDevice {
		codes = append(codes, code)
	}
	sortStrings(codes)
	return codes[g.rng.IntN(len(codes))]
}

// DrawPhysician implements draw_random_physician: with an admission's
// attending physician present, 50% chance it is reused, 25% the patient's
// primary physician, 25% a random roster pick; without an admission, it is
// 50% primary, 50% a random roster pick.
//
// Grounded on preprocessing/preprocess_main.py::draw_random_physician.
func (g *Generator) DrawPhysician(primary *model.Physician, roster []*model.Physician, admissionPhysician *model.Physician) *model.Physician {
	if admissionPhysician != nil {
		switch g.weightedIndex([]float64{0.5, 0.25, 0.25}) {
		case 0:
			return admissionPhysician
		case 1:
			return primary
		default:
			return roster[g.rng.IntN(len(roster))]
		}
	}
	if g.rng.Float64() < 0.5 {
		return primary
	}
	return roster[g.rng.IntN(len(roster))]
}

// insurerNames gives each InsurancePlanExt prefix a plausible, clearly
// synthetic insurer name; company name is message-required for every
// non-national-health insurance plan (model.NewInsurance).
var insurerNames = map[string]string{
	"01": "仮健康保険組合",
	"06": "仮全国健康保険協会",
	"31": "仮共済組合",
	"39": "仮後期高齢者医療広域連合",
}

// RandomInsurance synthesizes one Insurance record: a 50%-weighted national
// health ("C0", 6-digit number) plan, else a random employer/mutual-aid
// plan whose 8-digit number's first two digits match an InsurancePlanExt
// prefix, per model.NewInsurance's own requirement.
func (g *Generator) RandomInsurance() (*model.Insurance, error) {
	planType := "1"
	if g.rng.Float64() < 0.3 {
		planType = "2"
	}
	if g.RandomInsuranceIsNationalHealth() {
		return model.NewInsurance("C0", g.RandomDigits(6), planType, "", "1", "", "")
	}

	extCodes := make([]string, 0, len(model.InsurancePlanExt))
	for code := range model.InsurancePlanExt {
		extCodes = append(extCodes, code)
	}
	sortStrings(extCodes)
	prefix := extCodes[g.rng.IntN(len(extCodes))]

	planCodes := make([]string, 0, len(model.InsurancePlan)-1)
	for code := range model.InsurancePlan {
		if code != "C0" {
			planCodes = append(planCodes, code)
		}
	}
	sortStrings(planCodes)
	planCode := planCodes[g.rng.IntN(len(planCodes))]

	number := prefix + g.RandomDigits(6)
	return model.NewInsurance(planCode, number, planType, insurerNames[prefix], "1", "", "")
}

func sortStrings(ss []string) {
	for i := 1; i < len(ss); i++ {
		for j := i; j > 0 && ss[j-1] > ss[j]; j-- {
			ss[j-1], ss[j] = ss[j], ss[j-1]
		}
	}
}
