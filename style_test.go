package proseml

import "testing"

func TestStyleStringOrder(t *testing.T) {
	flags := StyleFlags{
		Align:            AlignJustify,
		BreakBefore:      PageBreakAuto,
		BreakAfter:       PageBreakAlways,
		ZeroTopMargin:    true,
		ZeroBottomMargin: true,
	}
	want := "text-align: justify; page-break-before: auto; page-break-after: always; margin-bottom: 0; margin-top: 0;"
	if got := flags.StyleString(); got != want {
		t.Fatalf("style string:\n got %q\nwant %q", got, want)
	}
	if got := (StyleFlags{}).StyleString(); got != "" {
		t.Fatalf("empty flags gave %q", got)
	}
}

func TestStyleAttr(t *testing.T) {
	flags := &StyleFlags{Align: AlignCenter}
	if got := styleAttr(flags, true); got != " style='text-align: center;'" {
		t.Fatalf("unexpected attr %q", got)
	}
	if got := styleAttr(flags, false); got != "" {
		t.Fatalf("css disabled should drop style, got %q", got)
	}
	if got := styleAttr(nil, true); got != "" {
		t.Fatalf("nil flags should drop style, got %q", got)
	}
	if got := styleAttr(&StyleFlags{}, true); got != "" {
		t.Fatalf("unset flags should drop style, got %q", got)
	}
}

func TestParseAlignmentAndPageBreak(t *testing.T) {
	if a, err := ParseAlignment("Centre"); err != nil || a != AlignCenter {
		t.Fatalf("centre: %v %v", a, err)
	}
	if _, err := ParseAlignment("middle"); err == nil {
		t.Fatalf("expected error for unknown alignment")
	}
	if p, err := ParsePageBreak("always"); err != nil || p != PageBreakAlways {
		t.Fatalf("always: %v %v", p, err)
	}
	if _, err := ParsePageBreak("never"); err == nil {
		t.Fatalf("expected error for unknown page break")
	}
}

func TestKindNamesRoundTrip(t *testing.T) {
	for k := TokenEmpty; k <= TokenKeyword; k++ {
		got, err := ParseTokenKind(k.String())
		if err != nil || got != k {
			t.Fatalf("token kind %v: %v %v", k, got, err)
		}
	}
	for k := FormatBoldOpen; k < formatKindCount; k++ {
		got, err := ParseFormatKind(k.String())
		if err != nil || got != k {
			t.Fatalf("format kind %v: %v %v", k, got, err)
		}
	}
	if _, err := ParseTokenKind("chapter"); err == nil {
		t.Fatalf("expected error for unknown token kind")
	}
}
