package hl7

import (
	"strings"
	"testing"
)

func TestEscape(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a|b", `a\F\b`},
		{"a^b", `a\S\b`},
		{"a~b", `a\R\b`},
		{"a&b", `a\T\b`},
		{`a\b`, `a\E\b`},
	}
	for _, c := range cases {
		if got := Escape(c.in); got != c.want {
			t.Errorf("Escape(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSegmentRenderMSH(t *testing.T) {
	seg := NewSegment("MSH")
	seg.Set(2, EncodingChars)
	seg.Set(9, "ADT^A08")
	got := seg.Render()
	want := "MSH|" + EncodingChars + strings.Repeat("|", 7) + "ADT^A08"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestSegmentRenderTrimsTrailingAbsent(t *testing.T) {
	seg := NewSegment("PID")
	seg.Set(3, "12345")
	seg.Set(10, "")
	if got, want := seg.Render(), "PID|||12345"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestFieldVariants(t *testing.T) {
	if !Val("").IsAbsent() {
		t.Error("Val(\"\") should be Absent")
	}
	if !LiteralEmptyQuote().IsLiteralQuote() {
		t.Error("LiteralEmptyQuote should report IsLiteralQuote")
	}
	if LiteralEmptyQuote().Encode() != `""` {
		t.Errorf("LiteralEmptyQuote().Encode() = %q, want `\"\"`", LiteralEmptyQuote().Encode())
	}
	if Val("x").Encode() != "x" {
		t.Errorf("Val(\"x\").Encode() = %q, want %q", Val("x").Encode(), "x")
	}
}

func TestMessageRender(t *testing.T) {
	msh := NewSegment("MSH")
	msh.Set(2, EncodingChars)
	pid := NewSegment("PID")
	pid.Set(3, "99999")
	msg := &Message{Segments: []*Segment{msh, pid}}
	got := msg.Render()
	want := msh.Render() + SegmentTerm + pid.Render() + SegmentTerm
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
