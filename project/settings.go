// Package project loads per-project render settings and provides a static
// keyword index for the renderer.
package project

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"pkt.systems/proseml"
)

// ErrUnknownFormat is returned for settings files that are neither TOML nor
// YAML.
var ErrUnknownFormat = errors.New("unknown settings format")

// Settings mirrors a project settings file.
//
//	title = "The Lighthouse"
//	novel = true
//	keywords = ["@tag", "@char", "@pov"]
//
//	[format]
//	font_family = "Georgia"
//	font_size = 12
//	line_height = 1.15
//	justify = true
//
//	[render]
//	comments = true
//	extra_css = ["print.css"]
type Settings struct {
	Title    string   `toml:"title" yaml:"title"`
	Novel    bool     `toml:"novel" yaml:"novel"`
	Keywords []string `toml:"keywords" yaml:"keywords"`
	Format   Format   `toml:"format" yaml:"format"`
	Render   Render   `toml:"render" yaml:"render"`
}

// Format holds typographic settings. Zero values keep the defaults.
type Format struct {
	FontFamily string  `toml:"font_family" yaml:"font_family"`
	FontSize   int     `toml:"font_size" yaml:"font_size"`
	LineHeight float64 `toml:"line_height" yaml:"line_height"`
	Justify    bool    `toml:"justify" yaml:"justify"`
	TabWidth   *int    `toml:"tab_width" yaml:"tab_width"`
	TabSpace   string  `toml:"tab_space" yaml:"tab_space"`
}

// Render holds the render toggles. Nil pointers keep the defaults.
type Render struct {
	CSS         *bool    `toml:"css" yaml:"css"`
	Keywords    *bool    `toml:"keywords" yaml:"keywords"`
	LinkAnchors bool     `toml:"link_anchors" yaml:"link_anchors"`
	Comments    bool     `toml:"comments" yaml:"comments"`
	Synopsis    bool     `toml:"synopsis" yaml:"synopsis"`
	KeepSource  bool     `toml:"keep_source" yaml:"keep_source"`
	ExtraCSS    []string `toml:"extra_css" yaml:"extra_css"`
}

// ParseError reports a settings file that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads settings from path. The format follows the file extension.
// Relative extra stylesheet paths are resolved against the directory of path.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}
	s, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	base := filepath.Dir(path)
	for i, p := range s.Render.ExtraCSS {
		if !filepath.IsAbs(p) {
			s.Render.ExtraCSS[i] = filepath.Join(base, p)
		}
	}
	return s, nil
}

// Parse decodes settings data. name selects the format by extension and is
// used in errors. Unknown fields are rejected.
func Parse(name string, data []byte) (*Settings, error) {
	var s Settings
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			perr := &ParseError{Path: name, Message: err.Error(), Err: err}
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				perr.Line, perr.Column = derr.Position()
			}
			return nil, perr
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: name, Message: err.Error(), Err: err}
		}
	default:
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownFormat)
	}
	if err := s.validate(); err != nil {
		return nil, &ParseError{Path: name, Message: err.Error(), Err: err}
	}
	return &s, nil
}

func (s *Settings) validate() error {
	if s.Format.FontSize < 0 {
		return fmt.Errorf("font_size must not be negative, got %d", s.Format.FontSize)
	}
	if s.Format.LineHeight < 0 {
		return fmt.Errorf("line_height must not be negative, got %g", s.Format.LineHeight)
	}
	for _, key := range s.Keywords {
		if _, ok := proseml.KeywordLabel(key); !ok {
			return fmt.Errorf("unknown keyword %q", key)
		}
	}
	return nil
}

// Config applies the settings on top of proseml.DefaultConfig. Extra
// stylesheets are not read; see Render.ExtraCSS.
func (s *Settings) Config() proseml.Config {
	cfg := proseml.DefaultConfig()
	cfg.Title = s.Title
	cfg.Novel = s.Novel

	if s.Format.FontFamily != "" {
		cfg.FontFamily = s.Format.FontFamily
	}
	if s.Format.FontSize > 0 {
		cfg.FontSize = s.Format.FontSize
	}
	if s.Format.LineHeight > 0 {
		cfg.LineHeight = s.Format.LineHeight
	}
	cfg.Justify = s.Format.Justify
	if s.Format.TabWidth != nil {
		cfg.TabWidth = *s.Format.TabWidth
	}
	if s.Format.TabSpace != "" {
		cfg.TabSpace = s.Format.TabSpace
	}

	if s.Render.CSS != nil {
		cfg.CSS = *s.Render.CSS
	}
	if s.Render.Keywords != nil {
		cfg.Keywords = *s.Render.Keywords
	}
	cfg.LinkAnchors = s.Render.LinkAnchors
	cfg.Comments = s.Render.Comments
	cfg.Synopsis = s.Render.Synopsis
	cfg.KeepSource = s.Render.KeepSource
	return cfg
}

// Index returns a keyword index accepting the keywords listed in the
// settings, or every known keyword when none are listed.
func (s *Settings) Index() *Index {
	return NewIndex(s.Keywords...)
}
