// Package tokenfile decodes token streams stored as JSON.
//
// A token file looks like:
//
//	{"tokens": [
//	  {"kind": "title", "line": 1, "text": "Chapter One"},
//	  {"kind": "text", "line": 3, "text": "It was **late**.",
//	   "format": [[7, 2, "bold_open"], [13, 2, "bold_close"]],
//	   "style": {"align": "center", "break_before": "always"}}
//	]}
//
// Kinds and format kinds use the names printed by proseml.TokenKind and
// proseml.FormatKind. Format positions count characters, not bytes.
package tokenfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"pkt.systems/proseml"
)

// ErrInvalidJSON is returned for input that is not well-formed JSON.
var ErrInvalidJSON = errors.New("invalid json")

// DecodeError reports the token that could not be decoded.
type DecodeError struct {
	Index int
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("token %d: %s: %v", e.Index, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ReadFile reads and decodes the token file at path.
func ReadFile(path string) ([]proseml.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tokens, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tokens, nil
}

// Decode decodes a token file. A missing "tokens" array yields no tokens.
// Control characters other than tab are dropped from token text and span
// positions are moved to match.
func Decode(data []byte) ([]proseml.Token, error) {
	if err := ValidateInput(data); err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	list := gjson.GetBytes(data, "tokens")
	if !list.Exists() {
		return nil, nil
	}
	if !list.IsArray() {
		return nil, &DecodeError{Index: -1, Field: "tokens", Err: errors.New("not an array")}
	}
	items := list.Array()
	tokens := make([]proseml.Token, 0, len(items))
	for i, item := range items {
		tok, err := decodeToken(item)
		if err != nil {
			err.Index = i
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func decodeToken(item gjson.Result) (proseml.Token, *DecodeError) {
	var tok proseml.Token
	if !item.IsObject() {
		return tok, &DecodeError{Field: "token", Err: errors.New("not an object")}
	}
	kind, err := proseml.ParseTokenKind(item.Get("kind").String())
	if err != nil {
		return tok, &DecodeError{Field: "kind", Err: err}
	}
	tok.Kind = kind
	tok.Line = int(item.Get("line").Int())
	tok.Text = item.Get("text").String()

	if format := item.Get("format"); format.Exists() {
		if !format.IsArray() {
			return tok, &DecodeError{Field: "format", Err: errors.New("not an array")}
		}
		for _, entry := range format.Array() {
			span, err := decodeSpan(entry)
			if err != nil {
				return tok, &DecodeError{Field: "format", Err: err}
			}
			tok.Spans = append(tok.Spans, span)
		}
	}

	tok.Text, tok.Spans = sanitizeText(tok.Text, tok.Spans)

	if style := item.Get("style"); style.Exists() {
		flags, err := decodeStyle(style)
		if err != nil {
			return tok, &DecodeError{Field: "style", Err: err}
		}
		tok.Style = flags
	}
	return tok, nil
}

func decodeSpan(entry gjson.Result) (proseml.FormatSpan, error) {
	parts := entry.Array()
	if !entry.IsArray() || len(parts) != 3 {
		return proseml.FormatSpan{}, fmt.Errorf("span %s: want [pos, len, kind]", entry.Raw)
	}
	if parts[0].Type != gjson.Number || parts[1].Type != gjson.Number {
		return proseml.FormatSpan{}, fmt.Errorf("span %s: position and length must be numbers", entry.Raw)
	}
	kind, err := proseml.ParseFormatKind(parts[2].String())
	if err != nil {
		return proseml.FormatSpan{}, err
	}
	return proseml.FormatSpan{Pos: int(parts[0].Int()), Len: int(parts[1].Int()), Kind: kind}, nil
}

func decodeStyle(style gjson.Result) (*proseml.StyleFlags, error) {
	if !style.IsObject() {
		return nil, errors.New("not an object")
	}
	var (
		flags proseml.StyleFlags
		err   error
	)
	if v := style.Get("align"); v.Exists() {
		if flags.Align, err = proseml.ParseAlignment(v.String()); err != nil {
			return nil, err
		}
	}
	if v := style.Get("break_before"); v.Exists() {
		if flags.BreakBefore, err = proseml.ParsePageBreak(v.String()); err != nil {
			return nil, err
		}
	}
	if v := style.Get("break_after"); v.Exists() {
		if flags.BreakAfter, err = proseml.ParsePageBreak(v.String()); err != nil {
			return nil, err
		}
	}
	flags.ZeroTopMargin = style.Get("zero_top_margin").Bool()
	flags.ZeroBottomMargin = style.Get("zero_bottom_margin").Bool()
	return &flags, nil
}
