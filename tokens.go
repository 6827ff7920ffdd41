package proseml

import (
	"fmt"
	"strings"
)

// Token is one typed line of a tokenized document.
type Token struct {
	Kind  TokenKind
	Line  int
	Text  string
	Spans []FormatSpan
	Style *StyleFlags
}

// TokenKind identifies the block type of a token.
type TokenKind uint8

const (
	// TokenEmpty is a blank line; it closes an open paragraph.
	TokenEmpty TokenKind = iota
	// TokenTitle is a document title.
	TokenTitle
	// TokenHeading1 is a level one heading.
	TokenHeading1
	// TokenHeading2 is a level two heading.
	TokenHeading2
	// TokenHeading3 is a level three heading.
	TokenHeading3
	// TokenHeading4 is a level four heading.
	TokenHeading4
	// TokenSeparator is a scene separator rendered verbatim.
	TokenSeparator
	// TokenSkip is a blank spacer paragraph.
	TokenSkip
	// TokenText is one soft-wrapped line of paragraph text.
	TokenText
	// TokenSynopsis is a synopsis comment.
	TokenSynopsis
	// TokenComment is a plain comment.
	TokenComment
	// TokenKeyword is a keyword line without its leading '@'.
	TokenKeyword
)

var tokenKindNames = [...]string{
	TokenEmpty:     "empty",
	TokenTitle:     "title",
	TokenHeading1:  "heading1",
	TokenHeading2:  "heading2",
	TokenHeading3:  "heading3",
	TokenHeading4:  "heading4",
	TokenSeparator: "separator",
	TokenSkip:      "skip",
	TokenText:      "text",
	TokenSynopsis:  "synopsis",
	TokenComment:   "comment",
	TokenKeyword:   "keyword",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

// ParseTokenKind returns the kind with the given name, as printed by String.
func ParseTokenKind(name string) (TokenKind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, n := range tokenKindNames {
		if n == normalized {
			return TokenKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown token kind %q", name)
}

// FormatKind is the inline delimiter a format span is replaced with.
type FormatKind uint8

const (
	// FormatBoldOpen opens bold text.
	FormatBoldOpen FormatKind = iota
	// FormatBoldClose closes bold text.
	FormatBoldClose
	// FormatItalicOpen opens italic text.
	FormatItalicOpen
	// FormatItalicClose closes italic text.
	FormatItalicClose
	// FormatStrikeOpen opens struck-through text.
	FormatStrikeOpen
	// FormatStrikeClose closes struck-through text.
	FormatStrikeClose

	formatKindCount
)

var formatKindNames = [formatKindCount]string{
	FormatBoldOpen:    "bold_open",
	FormatBoldClose:   "bold_close",
	FormatItalicOpen:  "italic_open",
	FormatItalicClose: "italic_close",
	FormatStrikeOpen:  "strike_open",
	FormatStrikeClose: "strike_close",
}

func (k FormatKind) String() string {
	if k < formatKindCount {
		return formatKindNames[k]
	}
	return fmt.Sprintf("FormatKind(%d)", uint8(k))
}

// ParseFormatKind returns the format kind with the given name, as printed by String.
func ParseFormatKind(name string) (FormatKind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, n := range formatKindNames {
		if n == normalized {
			return FormatKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown format kind %q", name)
}

// FormatSpan marks the rune range [Pos, Pos+Len) of a token's text for
// replacement with the delimiter for Kind. Len is usually the length of the
// markup marker in the text, and may be zero for a pure insertion.
type FormatSpan struct {
	Pos  int
	Len  int
	Kind FormatKind
}
