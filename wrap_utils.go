package proseml

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const logTextWidth = 48

// logText shortens s for use as a log attribute.
func logText(s string) string {
	if ansi.PrintableRuneWidth(s) <= logTextWidth {
		return s
	}
	return truncate.StringWithTail(s, logTextWidth, "…")
}

// wrapSourceLine wraps a source text line at limit columns. A trailing hard
// break marker survives wrapping.
func wrapSourceLine(line string, limit int) string {
	if limit <= 0 || ansi.PrintableRuneWidth(line) <= limit {
		return line
	}
	suffix := ""
	if strings.HasSuffix(line, hardBreakSuffix) {
		suffix = hardBreakSuffix
		line = strings.TrimRight(line, " ")
	}
	return wordwrap.String(line, limit) + suffix
}
