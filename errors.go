package proseml

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedSpan reports format spans that overlap or fall outside the text.
	ErrMalformedSpan = errors.New("malformed format span")
	// ErrPersistence reports a failure writing the assembled document.
	ErrPersistence = errors.New("persist html")
)

// MalformedSpanError describes the first invalid span of a token.
type MalformedSpanError struct {
	Line   int
	Span   FormatSpan
	Reason string
}

func (e *MalformedSpanError) Error() string {
	return fmt.Sprintf("line %d: %s at %d+%d (%s): %s", e.Line, ErrMalformedSpan, e.Span.Pos, e.Span.Len, e.Span.Kind, e.Reason)
}

// Is reports ErrMalformedSpan as a match.
func (e *MalformedSpanError) Is(target error) bool {
	return target == ErrMalformedSpan
}

// PersistenceError wraps an I/O failure while saving the assembled document.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrPersistence, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is reports ErrPersistence as a match.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// ErrUnsupportedRule reports an at-rule in a user stylesheet.
var ErrUnsupportedRule = errors.New("unsupported css rule")

// ExtraCSSError reports a user stylesheet that cannot be merged.
type ExtraCSSError struct {
	Rule string
	Err  error
}

func (e *ExtraCSSError) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("extra css: %s: %v", e.Rule, e.Err)
	}
	return fmt.Sprintf("extra css: %v", e.Err)
}

func (e *ExtraCSSError) Unwrap() error {
	return e.Err
}
