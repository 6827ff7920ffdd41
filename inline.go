package proseml

import (
	"sort"
	"strings"
	"unicode"
)

// TagTable holds the delimiter strings for each FormatKind.
type TagTable [formatKindCount]string

// HTML4Tags is the HTML4 + CSS2 dialect used in Preview mode.
var HTML4Tags = TagTable{
	FormatBoldOpen:    "<b>",
	FormatBoldClose:   "</b>",
	FormatItalicOpen:  "<i>",
	FormatItalicClose: "</i>",
	FormatStrikeOpen:  "<span style='text-decoration: line-through;'>",
	FormatStrikeClose: "</span>",
}

// HTML5Tags is the dialect used for export and ebook output.
var HTML5Tags = TagTable{
	FormatBoldOpen:    "<strong>",
	FormatBoldClose:   "</strong>",
	FormatItalicOpen:  "<em>",
	FormatItalicClose: "</em>",
	FormatStrikeOpen:  "<del>",
	FormatStrikeClose: "</del>",
}

const (
	hardBreakSuffix = "  "
	lineBreakTag    = "<br/>"
)

// ValidateSpans checks that every span has a known kind, lies within the
// runeCount runes of the text and does not overlap another span. It returns
// the spans sorted by position.
func ValidateSpans(spans []FormatSpan, runeCount int) ([]FormatSpan, error) {
	sorted := make([]FormatSpan, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Pos < sorted[j].Pos
	})
	end := 0
	for i, sp := range sorted {
		switch {
		case sp.Kind >= formatKindCount:
			return nil, &MalformedSpanError{Span: sp, Reason: "unknown format kind"}
		case sp.Pos < 0 || sp.Len < 0:
			return nil, &MalformedSpanError{Span: sp, Reason: "negative position or length"}
		case sp.Pos > runeCount || sp.Len > runeCount-sp.Pos:
			return nil, &MalformedSpanError{Span: sp, Reason: "span exceeds text length"}
		case i > 0 && sp.Pos < end:
			return nil, &MalformedSpanError{Span: sp, Reason: "span overlaps previous span"}
		}
		end = sp.Pos + sp.Len
	}
	return sorted, nil
}

// ApplySpans replaces each span's rune range in text with its delimiter from
// tags. Spans are applied right-most first so the positions of the spans still
// pending are unaffected by earlier replacements.
func ApplySpans(text string, spans []FormatSpan, tags TagTable) (string, error) {
	if len(spans) == 0 {
		return text, nil
	}
	runes := []rune(text)
	sorted, err := ValidateSpans(spans, len(runes))
	if err != nil {
		return "", err
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		sp := sorted[i]
		tail := append([]rune(tags[sp.Kind]), runes[sp.Pos+sp.Len:]...)
		runes = append(runes[:sp.Pos:sp.Pos], tail...)
	}
	return string(runes), nil
}

// formatLine applies the spans to one text line and prepares it for the
// paragraph buffer. A raw line ending in two spaces becomes a hard break.
func formatLine(text string, spans []FormatSpan, tags TagTable) (string, bool, error) {
	line, err := ApplySpans(text, spans, tags)
	if err != nil {
		return "", false, err
	}
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	if strings.HasSuffix(text, hardBreakSuffix) {
		return line + lineBreakTag, true, nil
	}
	return line + " ", false, nil
}
