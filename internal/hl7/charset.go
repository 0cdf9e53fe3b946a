package hl7

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

// CharacterSet names a Japanese character set this package can certify a
// message body against. The profile requires every run to honor a single
// declared character set for all free-text values it writes, even though
// MSH itself always declares the fixed ISO-IR-87 repertoire regardless of
// which of these the run chose.
type CharacterSet string

const (
	ShiftJIS CharacterSet = "shift_jis"
	ISO2022  CharacterSet = "ISO 2022-1994"
)

// Encodable reports whether s round-trips through the named character set
// without substitution, i.e. every rune in s has a representation in it.
// A message containing a rune the run's character set cannot carry is an
// encoding error, not a silent mojibake write.
func Encodable(s string, cs CharacterSet) bool {
	enc := encoderFor(cs)
	if enc == nil {
		return false
	}
	_, err := enc.NewEncoder().String(s)
	return err == nil
}

func encoderFor(cs CharacterSet) encoding.Encoding {
	switch cs {
	case ShiftJIS:
		return japanese.ShiftJIS
	case ISO2022:
		return japanese.ISO2022JP
	default:
		return nil
	}
}
