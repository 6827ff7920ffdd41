package proseml

import (
	"strings"
	"unicode"
)

// paragraph buffers formatted text lines until an empty token closes it.
type paragraph struct {
	lines     []string
	style     string
	styleSet  bool
	hardBreak bool
}

func (p *paragraph) open() bool {
	return len(p.lines) > 0
}

// add appends a formatted line. The style of the first line added since the
// last flush is kept for the whole paragraph.
func (p *paragraph) add(line, style string, hardBreak bool) {
	if !p.styleSet {
		p.style = style
		p.styleSet = true
	}
	p.lines = append(p.lines, line)
	if hardBreak {
		p.hardBreak = true
	}
}

// flush returns the paragraph markup, or "" when nothing is buffered, and
// resets the buffer.
func (p *paragraph) flush(cssEnabled bool) string {
	defer p.reset()
	if len(p.lines) == 0 {
		return ""
	}
	class := ""
	if p.hardBreak && cssEnabled {
		class = " class='break'"
	}
	body := strings.TrimRightFunc(strings.Join(p.lines, ""), unicode.IsSpace)
	return "<p" + p.style + class + ">" + body + "</p>\n"
}

func (p *paragraph) reset() {
	p.lines = p.lines[:0]
	p.style = ""
	p.styleSet = false
	p.hardBreak = false
}
