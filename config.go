package proseml

import (
	"fmt"
	"strings"
)

// Mode selects the tag dialect, heading promotion and keyword link targets.
type Mode uint8

const (
	// ModePreview tweaks output for an in-application document viewer.
	ModePreview Mode = iota
	// ModeExport tweaks output for saving to HTML or printing.
	ModeExport
	// ModeEbook tweaks output for conversion to an ebook.
	ModeEbook
)

func (m Mode) String() string {
	switch m {
	case ModePreview:
		return "preview"
	case ModeExport:
		return "export"
	case ModeEbook:
		return "ebook"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode parses "preview", "export" or "ebook".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "preview":
		return ModePreview, nil
	case "", "export", "html":
		return ModeExport, nil
	case "ebook", "epub":
		return ModeEbook, nil
	}
	return ModeExport, fmt.Errorf("unknown mode %q", s)
}

// Config holds the render settings. It is read-only while rendering.
type Config struct {
	CSS         bool
	LinkAnchors bool
	Novel       bool
	KeepSource  bool
	Comments    bool
	Synopsis    bool
	Keywords    bool

	Title      string
	FontFamily string
	FontSize   int
	LineHeight float64
	Justify    bool

	// TabWidth is the number of TabSpace placeholders a tab expands to.
	// Zero or less keeps tabs as a numeric character reference.
	TabWidth int
	TabSpace string

	// ExtraCSS rules are appended to the generated stylesheet.
	ExtraCSS []string
}

// DefaultConfig returns a baseline configuration.
func DefaultConfig() Config {
	return Config{
		CSS:        true,
		Keywords:   true,
		FontFamily: "Georgia",
		FontSize:   12,
		LineHeight: 1.15,
		TabWidth:   8,
		TabSpace:   "&nbsp;",
	}
}
