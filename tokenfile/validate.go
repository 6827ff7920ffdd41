package tokenfile

import (
	"errors"
	"strings"
	"unicode/utf8"

	"pkt.systems/proseml"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error if src is not valid UTF-8 or appears binary.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var total, control int
	for _, b := range src {
		total++
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if total >= minBinarySample && control*100 >= total*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlByte(b byte) bool {
	return b < 0x09 || (b > 0x0D && b < 0x20) || b == 0x7F
}

// sanitizeText drops control characters from decoded token text and shifts
// spans so they keep covering the same characters. Tabs are kept for tab
// expansion. Spans outside the text are left for the renderer to reject.
func sanitizeText(s string, spans []proseml.FormatSpan) (string, []proseml.FormatSpan) {
	if strings.IndexFunc(s, isControlRune) < 0 {
		return s, spans
	}
	runes := []rune(s)
	// removed[i] counts control runes before rune i.
	removed := make([]int, len(runes)+1)
	kept := runes[:0:0]
	for i, r := range runes {
		removed[i+1] = removed[i]
		if isControlRune(r) {
			removed[i+1]++
			continue
		}
		kept = append(kept, r)
	}
	n := len(runes)
	for i, sp := range spans {
		if sp.Pos < 0 || sp.Len < 0 || sp.Pos > n || sp.Len > n-sp.Pos {
			continue
		}
		end := sp.Pos + sp.Len
		spans[i].Pos = sp.Pos - removed[sp.Pos]
		spans[i].Len = end - removed[end] - spans[i].Pos
	}
	return string(kept), spans
}

func isControlRune(r rune) bool {
	if r == '\t' {
		return false
	}
	return r < 0x20 || r == 0x7F
}
