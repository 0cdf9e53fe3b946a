package hl7

import "strings"

// Delimiters are the HL7 v2.5 default encoding characters, carried
// literally in MSH-1/MSH-2 of every message this package builds.
const (
	FieldSep     = "|"
	ComponentSep = "^"
	RepeatSep    = "~"
	EscapeChar   = "\\"
	SubcompSep   = "&"

	// EncodingChars is MSH-2's value: component, repetition, escape, subcomponent.
	EncodingChars = ComponentSep + RepeatSep + EscapeChar + SubcompSep

	// SegmentTerm terminates every segment. The profile uses a bare carriage
	// return, not the LF the reference implementation joins segments with.
	SegmentTerm = "\r"
)

var escapeReplacer = strings.NewReplacer(
	EscapeChar, EscapeChar+"E"+EscapeChar,
	FieldSep, EscapeChar+"F"+EscapeChar,
	ComponentSep, EscapeChar+"S"+EscapeChar,
	RepeatSep, EscapeChar+"R"+EscapeChar,
	SubcompSep, EscapeChar+"T"+EscapeChar,
)

// Escape replaces delimiter characters in a raw value with their HL7
// escape sequences. The escape character itself must be escaped first so
// that sequences produced for the other delimiters are not themselves
// re-escaped.
func Escape(s string) string {
	return escapeReplacer.Replace(s)
}

// Component joins a field's components with ComponentSep, dropping
// trailing empty components so short composites don't grow spurious "^^"
// tails.
func Component(components ...string) string {
	return strings.Join(trimTrailingEmpty(components), ComponentSep)
}

// Repeat joins repetition instances, each already an encoded field value.
func Repeat(instances ...string) string {
	return strings.Join(instances, RepeatSep)
}

func trimTrailingEmpty(ss []string) []string {
	n := len(ss)
	for n > 0 && ss[n-1] == "" {
		n--
	}
	return ss[:n]
}

// Segment is an ordered sequence of field values, already encoded, for one
// HL7 segment. Index 0 is the segment ID (e.g. "MSH", "PID").
type Segment struct {
	Fields []string
}

// NewSegment starts a segment with the given segment ID as field 0.
func NewSegment(id string) *Segment {
	return &Segment{Fields: []string{id}}
}

// Set places an encoded field value at the given 1-based field position,
// extending the field slice with absent fields as needed.
func (s *Segment) Set(pos int, value string) {
	for len(s.Fields) <= pos {
		s.Fields = append(s.Fields, "")
	}
	s.Fields[pos] = value
}

// SetField is Set for an hl7.Field value.
func (s *Segment) SetField(pos int, f Field) {
	s.Set(pos, f.Encode())
}

// Render produces the segment's wire form, without a trailing terminator,
// trimming trailing empty fields (a segment ending "|||" is written as the
// shorter, equivalent form with fields implicitly absent).
func (s *Segment) Render() string {
	fields := trimTrailingEmpty(s.Fields)
	if len(fields) == 0 {
		return ""
	}
	// MSH is special: MSH-1 is the field separator character itself,
	// rendered literally by the "MSH"+FieldSep prefix below rather than
	// stored as a field value, so index 1 is an unused placeholder and
	// MSH-2 (encoding characters) onward starts at fields[2]. This keeps
	// Set(n, ...) meaning "MSH-n" for every n, including n==1 implicitly.
	if fields[0] == "MSH" {
		if len(fields) <= 2 {
			return "MSH" + FieldSep
		}
		return "MSH" + FieldSep + strings.Join(fields[2:], FieldSep)
	}
	return strings.Join(fields, FieldSep)
}

// Message is an ordered list of segments making up one HL7 message.
type Message struct {
	Segments []*Segment
}

// Render joins every segment with SegmentTerm, including a trailing
// terminator after the final segment, per the profile's file convention.
func (m *Message) Render() string {
	var b strings.Builder
	for _, seg := range m.Segments {
		b.WriteString(seg.Render())
		b.WriteString(SegmentTerm)
	}
	return b.String()
}
