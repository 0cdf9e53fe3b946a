// Package model holds the SS-MIX2 domain entities (patients, physicians,
// admissions, orders, lab results, problems) and the JAHIS/MERIT-9/JLAC10
// code tables their validation rules are checked against.
//
// The embedded tables below are a representative subset of each catalog,
// not the full national code set — large catalogs like JLAC10's test-type
// and specimen enumerations run to thousands of entries. Every table is a
// plain code-to-label map, so validation and generation code never depends
// on the subset being complete; extending a table to the full catalog is a
// data change, not a code change.
package model

// Sex is JAHIS udt_0001.
var Sex = map[string]string{
	"M": "Male",
	"F": "Female",
	"O": "Other",
	"U": "Unknown",
	"A": "Ambiguous",
	"N": "Not applicable",
}

// RelationshipToPatient is JAHIS udt_0063 (NK1-3).
var RelationshipToPatient = map[string]string{
	"SPO": "Spouse",
	"PAR": "Parent",
	"CHD": "Child",
	"SIB": "Sibling",
	"GRD": "Guardian",
	"OTH": "Other",
}

// DepartmentCode is JAHIS udt_0069, the JAHIS department code table.
var DepartmentCode = map[string]string{
	"01": "内科",
	"02": "呼吸器内科",
	"03": "消化器内科",
	"04": "循環器内科",
	"05": "腎臓内科",
	"06": "神経内科",
	"07": "小児科",
	"10": "外科",
	"11": "呼吸器外科",
	"12": "消化器外科",
	"13": "心臓血管外科",
	"20": "整形外科",
	"30": "産婦人科",
	"40": "眼科",
	"41": "耳鼻咽喉科",
	"50": "皮膚科",
	"60": "泌尿器科",
	"70": "精神科",
	"80": "放射線科",
	"90": "麻酔科",
	"99": "その他",
}

// DischargeDisposition is JAHIS udt_0112 (PV1-36).
var DischargeDisposition = map[string]string{
	"01": "治癒",
	"02": "軽快",
	"03": "転院",
	"04": "死亡",
	"09": "その他",
}

// AllergyTypeCode is JAHIS udt_0127 (AL1-2).
var AllergyTypeCode = map[string]string{
	"DA": "Drug allergy",
	"FA": "Food allergy",
	"LA": "Pollen allergy",
	"AA": "Animal allergy",
	"PA": "Plant allergy",
	"MA": "Miscellaneous allergy",
	"MC": "Miscellaneous contraindication",
	"EA": "Environmental allergy",
}

// RouteCode is JAHIS udt_0162 (RXR-1).
var RouteCode = map[string]string{
	"PO":  "経口",
	"IV":  "静脈内",
	"IM":  "筋肉内",
	"SC":  "皮下",
	"TOP": "外用",
	"PR":  "直腸内",
	"INH": "吸入",
}

// RouteAdminDevice is JAHIS udt_0164 (RXR-2).
var RouteAdminDevice = map[string]string{
	"IVP": "static IV push",
	"INJ": "injection",
	"DROP": "点滴",
}

// InsurancePlan is JAHIS jhsd_0001 (IN1-2), keyed by insurance_plan_code.
var InsurancePlan = map[string]string{
	"C0": "国民健康保険",
	"A0": "健康保険組合",
	"A1": "全国健康保険協会",
	"B0": "共済組合",
	"G0": "後期高齢者医療",
}

// InsurancePlanExt is JAHIS jhsd_0001_ext, the 2-digit insurer-number prefix
// used for insurance plans other than C0's national health insurance.
var InsurancePlanExt = map[string]string{
	"01": "健康保険組合",
	"06": "全国健康保険協会",
	"31": "共済組合",
	"39": "後期高齢者医療",
}

// InsurancePlanType is JAHIS jhsd_0002 (IN1-15).
var InsurancePlanType = map[string]string{
	"1": "被保険者本人",
	"2": "被扶養者",
}

// DiagnosisType is JAHIS jhsd_0004 (PRB-13).
var DiagnosisType = map[string]string{
	"H": "主病名（入院）",
	"O": "主病名（外来）",
	"F": "副病名",
}

// OrderControl is HL7 h7t_0119 (ORC-1/PRB-27).
var OrderControl = map[string]string{
	"NW": "New order",
	"CA": "Cancel order",
	"DC": "Discontinue order",
	"SC": "Status changed",
	"UC": "Unable to cancel",
}

// OrderStatus is HL7 h7t_0038 (ORC-5).
var OrderStatus = map[string]string{
	"CM": "Completed",
	"IP": "In process",
	"SC": "Scheduled",
	"CA": "Canceled",
	"ER": "Error",
}

// ValueType is HL7 h7t_0125 (OBX-2).
var ValueType = map[string]string{
	"NM": "Numeric",
	"ST": "String",
	"TX": "Text",
	"CE": "Coded entry",
	"DT": "Date",
}

// ResultStatus is HL7 h7t_0085 (OBX-11).
var ResultStatus = map[string]string{
	"F": "Final",
	"P": "Preliminary",
	"C": "Corrected",
	"X": "Cancelled",
}

// DosageForm is MERIT-9 merit_9_3 (RXE-6 form code).
var DosageForm = map[string]string{
	"100": "錠剤",
	"200": "散剤",
	"300": "顆粒剤",
	"400": "カプセル剤",
	"600": "内用液剤",
	"700": "注射剤",
	"810": "軟膏剤",
	"820": "クリーム剤",
	"900": "坐剤",
}

// DoseUnit is MERIT-9 merit_9_4 (RXE-5/RXC-4 unit code).
var DoseUnit = map[string]string{
	"mg":  "ミリグラム",
	"g":   "グラム",
	"mL":  "ミリリットル",
	"錠":   "錠",
	"包":   "包",
	"カプセル": "カプセル",
	"%":   "パーセント",
}

// InjectionType is JAHIS jhsi_0002 (RXE-24 equivalent for injection orders).
var InjectionType = map[string]string{
	"01": "通常注射",
	"02": "輸血",
	"03": "高カロリー輸液",
}

// ActionCode is the allowed PRB-3 problem action code set.
var ActionCode = map[string]string{
	"AD": "Add",
	"CD": "Corrected",
	"DE": "Delete",
	"LI": "Link",
	"UC": "Unchanged",
	"UN": "Unlink",
	"UP": "Update",
}

func contains(table map[string]string, code string) bool {
	_, ok := table[code]
	return ok
}

// PostalCodeEntry is one row of the reference postal-code table: a real
// Japanese postal code mapped to the prefecture/city/town it identifies.
// Synthesized addresses are always built on top of one of these entries so
// that "every postal code used exists in the reference postal-code table"
// holds by construction rather than by convention.
type PostalCodeEntry struct {
	Prefecture string
	City       string
	Town       string
}

// PostalCodes is a representative subset of Japan Post's national postal
// code table (the full table runs to well over 100,000 rows and is not
// present anywhere in the retrieved source tree). Every code here is a
// real, currently assigned postal code; the synthesizer only ever
// attaches the "99丁目" placeholder chōme and a "仮"-prefixed building
// name below the town level it names, never a fabricated postal code.
var PostalCodes = map[string]PostalCodeEntry{
	"100-0001": {"東京都", "千代田区", "千代田"},
	"150-0001": {"東京都", "渋谷区", "神宮前"},
	"160-0023": {"東京都", "新宿区", "西新宿"},
	"220-0011": {"神奈川県", "横浜市西区", "高島"},
	"330-0061": {"埼玉県", "さいたま市浦和区", "常盤"},
	"260-0013": {"千葉県", "千葉市中央区", "中央"},
	"530-0001": {"大阪府", "大阪市北区", "梅田"},
	"060-0001": {"北海道", "札幌市中央区", "北一条西"},
	"980-0021": {"宮城県", "仙台市青葉区", "中央"},
	"460-0008": {"愛知県", "名古屋市中区", "栄"},
	"812-0011": {"福岡県", "福岡市博多区", "博多駅前"},
	"730-0011": {"広島県", "広島市中区", "基町"},
	"900-0015": {"沖縄県", "那覇市", "久茂地"},
}

// postalCodeKeys is a stable iteration order over PostalCodes for weighted
// random draws; sorted once at init so repeated draws don't depend on Go's
// randomized map iteration order.
var postalCodeKeys = sortedKeys(PostalCodes)

// SortedPostalCodeKeys returns a stable, deterministic ordering of every
// key in PostalCodes, for callers (the synthesizer) that need to index
// into the table by a deterministic RNG draw rather than depend on Go's
// randomized map iteration order.
func SortedPostalCodeKeys() []string { return postalCodeKeys }

func sortedKeys(m map[string]PostalCodeEntry) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
