package proseml

import "strings"

var headingMarkers = [4]string{"# ", "## ", "### ", "#### "}

// reconstruct rebuilds the markup source of a token stream with entities
// decoded back to their characters.
func (c *Converter) reconstruct(tokens []Token) string {
	var b strings.Builder
	for i := range tokens {
		b.WriteString(sourceLine(&tokens[i], c.sourceWrap))
		b.WriteByte('\n')
	}
	return c.codec.Decode(b.String())
}

func sourceLine(tok *Token, wrap int) string {
	switch tok.Kind {
	case TokenTitle:
		return "#! " + tok.Text
	case TokenHeading1, TokenHeading2, TokenHeading3, TokenHeading4:
		return headingMarkers[tok.Kind-TokenHeading1] + tok.Text
	case TokenSeparator:
		return tok.Text
	case TokenText:
		return wrapSourceLine(tok.Text, wrap)
	case TokenSynopsis:
		return "% synopsis: " + tok.Text
	case TokenComment:
		return "% " + tok.Text
	case TokenKeyword:
		return "@" + tok.Text
	}
	return ""
}
