// Package synth generates the fake-but-realistic attribute values the
// profile requires every synthesized person and address to carry, each
// marked so a reader can never mistake it for real patient data.
//
// Grounded on original_source/ssmixtwins/src/utils/random_utils.py and
// objects/patient.py's generate_random_* functions, reimplemented against
// a per-worker deterministic RNG instead of the original's process-global
// Faker instance.
package synth

import (
	"fmt"
	"math/rand/v2"

	"golang.org/x/text/width"

	"github.com/gyeh/ssmixtwins/internal/model"
)

// Generator produces synthesized attribute values for exactly one worker's
// patient slice. Two generators constructed with the same seed produce
// identical output, and a generator never shares state with another
// worker's generator.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator derives a worker-scoped RNG from a global run seed and the
// worker's index, so parallel workers never share or contend on RNG state
// and a generator's output is fully determined by (seed, workerIndex).
func NewGenerator(seed int64, workerIndex int) *Generator {
	src := rand.NewPCG(uint64(seed), uint64(workerIndex))
	return &Generator{rng: rand.New(src)}
}

func (g *Generator) weightedIndex(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	r := g.rng.Float64() * total
	for i, w := range weights {
		if r < w {
			return i
		}
		r -= w
	}
	return len(weights) - 1
}

const (
	kanjiMarker = "仮"
	kanaMarker  = "カリ"
)

// MarkFakeKanji prefixes a kanji/kana name component with the "仮"
// marker the profile requires on every synthesized display name.
func MarkFakeKanji(name string) string { return kanjiMarker + name }

// MarkFakeKana prefixes a kana reading with the "カリ" marker.
func MarkFakeKana(reading string) string { return kanaMarker + reading }

// NormalizeKanaWidth folds half-width katakana to full-width, the kana
// normalization step the original leans on Faker's locale handling for.
func NormalizeKanaWidth(s string) string {
	return width.Widen.String(s)
}

// surnames and givenNames are small embedded name corpora standing in for
// the original's Faker ja_JP provider.
var surnames = []string{"山田", "佐藤", "鈴木", "高橋", "田中", "伊藤", "渡辺", "中村", "小林", "加藤"}
var givenNames = []string{"太郎", "次郎", "花子", "美咲", "健太", "さくら", "大輔", "由美", "翔太", "愛"}
var surnameKana = []string{"やまだ", "さとう", "すずき", "たかはし", "たなか", "いとう", "わたなべ", "なかむら", "こばやし", "かとう"}
var givenNameKana = []string{"たろう", "じろう", "はなこ", "みさき", "けんた", "さくら", "だいすけ", "ゆみ", "しょうた", "あい"}

// RandomPersonName draws a synthesized surname/given-name/kana quadruple,
// with the given name (the component the original prefixes) carrying the
// fake-data marker.
func (g *Generator) RandomPersonName() (lastName, firstName, lastNameKana, firstNameKana string) {
	i := g.rng.IntN(len(surnames))
	j := g.rng.IntN(len(givenNames))
	lastName = surnames[i]
	firstName = MarkFakeKanji(givenNames[j])
	lastNameKana = surnameKana[i]
	firstNameKana = MarkFakeKana(givenNameKana[j])
	return
}

// fixedChome is the chōme every synthesized address is pinned to, so a
// generated address can never collide with a real chōme-level address at
// the same postal code.
const fixedChome = "99丁目"

// RandomPostalCode draws a postal code from model.PostalCodes, the
// reference table every synthesized address is grounded on.
func (g *Generator) RandomPostalCode() (code string, entry model.PostalCodeEntry) {
	keys := model.SortedPostalCodeKeys()
	code = keys[g.rng.IntN(len(keys))]
	return code, model.PostalCodes[code]
}

// RandomAddress synthesizes a postal code drawn from the reference table
// and a street address consistent with it down to town level: chōme is
// always the fixed "99丁目" placeholder, and the building name carries the
// "仮" fake-data marker so it can never be mistaken for a real building.
func (g *Generator) RandomAddress() (postalCode, address string) {
	code, entry := g.RandomPostalCode()
	ban := g.rng.IntN(20) + 1
	gou := g.rng.IntN(10) + 1
	building := MarkFakeKanji(fmt.Sprintf("第%dビル", g.rng.IntN(9)+1))
	address = fmt.Sprintf("%s%s%s%s%d番%d号 %s", entry.Prefecture, entry.City, entry.Town, fixedChome, ban, gou, building)
	return code, address
}

// RandomPhone synthesizes a phone number with the given area-code prefix,
// matching the original's generate_random_phone(prefix=...).
func (g *Generator) RandomPhone(prefix string) string {
	return fmt.Sprintf("%s-%04d-%04d", prefix, g.rng.IntN(10000), g.rng.IntN(10000))
}

// WorkStatusProbability returns the probability a person of the given age
// is employed, matching the original's age-bracketed work-status draw.
func WorkStatusProbability(age int) float64 {
	switch {
	case age < 16:
		return 0
	case age < 24:
		return 0.5
	case age < 65:
		return 0.8
	default:
		return 0.4
	}
}

// RandomWorkStatus draws an employment boolean for the given age.
func (g *Generator) RandomWorkStatus(age int) bool {
	return g.rng.Float64() < WorkStatusProbability(age)
}

// RandomHeightCM and RandomWeightKG approximate Normal(172, 6) and
// Normal(60, 10) respectively, matching the original's height/weight draw.
func (g *Generator) RandomHeightCM() float64 {
	return clampPositive(172 + g.rng.NormFloat64()*6)
}

func (g *Generator) RandomWeightKG() float64 {
	return clampPositive(60 + g.rng.NormFloat64()*10)
}

func clampPositive(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// RandomInsuranceIsNationalHealth reports whether a synthesized insurance
// record should be the 50%-weighted "C0" national health insurance plan.
func (g *Generator) RandomInsuranceIsNationalHealth() bool {
	return g.rng.Float64() < 0.5
}

// Chance draws a boolean true with probability p, the general-purpose form
// of the weighted draws above for callers outside this package that need a
// single Bernoulli trial (internal/generate's physician-reassignment and
// order-detail coin flips).
func (g *Generator) Chance(p float64) bool {
	return g.rng.Float64() < p
}

// IntN draws a uniform index in [0, n), exposing the generator's draw
// stream to callers that index into their own catalogs (internal/generate's
// physician roster and injection-chunk selection).
func (g *Generator) IntN(n int) int {
	return g.rng.IntN(n)
}

// ShuffleIndices returns a random permutation of [0, n), using the same
// Fisher-Yates algorithm math/rand/v2's Shuffle applies, kept local so the
// draw stays on this generator's own stream rather than the package-level
// default source.
func (g *Generator) ShuffleIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := g.rng.IntN(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx
}

// RandomDigits draws a random n-digit string, zero-padded, used to
// synthesize insurer-assigned numbers (insurance numbers, supplemental
// identifiers) that must look like real digit sequences without being one.
func (g *Generator) RandomDigits(n int) string {
	digits := make([]byte, n)
	for i := range digits {
		digits[i] = byte('0' + g.rng.IntN(10))
	}
	return string(digits)
}
