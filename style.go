package proseml

import (
	"fmt"
	"strings"
)

// Alignment is the text alignment of a block.
type Alignment uint8

const (
	// AlignNone leaves alignment to the stylesheet.
	AlignNone Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
	AlignJustify
)

var alignmentNames = [...]string{"", "left", "right", "center", "justify"}

func (a Alignment) String() string {
	if int(a) < len(alignmentNames) {
		return alignmentNames[a]
	}
	return fmt.Sprintf("Alignment(%d)", uint8(a))
}

// ParseAlignment parses "left", "right", "center" (or "centre") and
// "justify". The empty string is AlignNone.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return AlignNone, nil
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center", "centre":
		return AlignCenter, nil
	case "justify":
		return AlignJustify, nil
	}
	return AlignNone, fmt.Errorf("unknown alignment %q", s)
}

// PageBreak is a page-break-before or page-break-after setting.
type PageBreak uint8

const (
	PageBreakNone PageBreak = iota
	PageBreakAlways
	PageBreakAuto
)

var pageBreakNames = [...]string{"", "always", "auto"}

func (p PageBreak) String() string {
	if int(p) < len(pageBreakNames) {
		return pageBreakNames[p]
	}
	return fmt.Sprintf("PageBreak(%d)", uint8(p))
}

// ParsePageBreak parses "always" and "auto". The empty string is PageBreakNone.
func ParsePageBreak(s string) (PageBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return PageBreakNone, nil
	case "always":
		return PageBreakAlways, nil
	case "auto":
		return PageBreakAuto, nil
	}
	return PageBreakNone, fmt.Errorf("unknown page break %q", s)
}

// StyleFlags holds the per-token layout flags set by the tokenizer.
type StyleFlags struct {
	Align            Alignment
	BreakBefore      PageBreak
	BreakAfter       PageBreak
	ZeroTopMargin    bool
	ZeroBottomMargin bool
}

// StyleString returns the inline CSS declarations for the flags in fixed
// order: alignment, page-break-before, page-break-after, then the zeroed
// bottom and top margins. Unset flags contribute nothing.
func (f StyleFlags) StyleString() string {
	decls := make([]string, 0, 5)
	switch f.Align {
	case AlignLeft:
		decls = append(decls, "text-align: left;")
	case AlignRight:
		decls = append(decls, "text-align: right;")
	case AlignCenter:
		decls = append(decls, "text-align: center;")
	case AlignJustify:
		decls = append(decls, "text-align: justify;")
	}
	switch f.BreakBefore {
	case PageBreakAlways:
		decls = append(decls, "page-break-before: always;")
	case PageBreakAuto:
		decls = append(decls, "page-break-before: auto;")
	}
	switch f.BreakAfter {
	case PageBreakAlways:
		decls = append(decls, "page-break-after: always;")
	case PageBreakAuto:
		decls = append(decls, "page-break-after: auto;")
	}
	if f.ZeroBottomMargin {
		decls = append(decls, "margin-bottom: 0;")
	}
	if f.ZeroTopMargin {
		decls = append(decls, "margin-top: 0;")
	}
	return strings.Join(decls, " ")
}

// styleAttr returns the style attribute for a token, or "" when CSS is
// disabled or no flag is set.
func styleAttr(flags *StyleFlags, cssEnabled bool) string {
	if flags == nil || !cssEnabled {
		return ""
	}
	s := flags.StyleString()
	if s == "" {
		return ""
	}
	return " style='" + s + "'"
}
