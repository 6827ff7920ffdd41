package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pkt.systems/proseml"
)

const tomlSettings = `
title = "The Lighthouse"
novel = true
keywords = ["@tag", "@char"]

[format]
font_family = "Garamond"
font_size = 11
line_height = 1.5
justify = true
tab_width = 4

[render]
css = false
comments = true
extra_css = ["print.css"]
`

const yamlSettings = `
title: The Lighthouse
novel: true
format:
  font_size: 14
render:
  keywords: false
  synopsis: true
`

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlSettings), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "The Lighthouse", s.Title)
	require.Equal(t, []string{filepath.Join(dir, "print.css")}, s.Render.ExtraCSS)

	cfg := s.Config()
	require.True(t, cfg.Novel)
	require.False(t, cfg.CSS)
	require.True(t, cfg.Keywords)
	require.True(t, cfg.Comments)
	require.True(t, cfg.Justify)
	require.Equal(t, "Garamond", cfg.FontFamily)
	require.Equal(t, 11, cfg.FontSize)
	require.Equal(t, 1.5, cfg.LineHeight)
	require.Equal(t, 4, cfg.TabWidth)
	require.Equal(t, "&nbsp;", cfg.TabSpace)

	valid, _, _ := s.Index().ScanThis("@pov: Jane")
	require.False(t, valid)
}

func TestParseYAML(t *testing.T) {
	s, err := Parse("project.yaml", []byte(yamlSettings))
	require.NoError(t, err)
	cfg := s.Config()
	require.Equal(t, 14, cfg.FontSize)
	require.Equal(t, "Georgia", cfg.FontFamily)
	require.False(t, cfg.Keywords)
	require.True(t, cfg.Synopsis)
	require.True(t, cfg.CSS)
	require.Equal(t, 8, cfg.TabWidth)
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	for _, name := range []string{"p.toml", "p.yml"} {
		s, err := Parse(name, nil)
		require.NoError(t, err, name)
		require.Equal(t, proseml.DefaultConfig(), s.Config(), name)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("p.toml", []byte("title = \n"))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "p.toml", perr.Path)
	require.Greater(t, perr.Line, 0)

	_, err = Parse("p.toml", []byte("colour = \"red\"\n"))
	require.ErrorAs(t, err, &perr)

	_, err = Parse("p.yaml", []byte("format:\n  font_size: big\n"))
	require.ErrorAs(t, err, &perr)

	_, err = Parse("p.toml", []byte("keywords = [\"@bogus\"]\n"))
	require.ErrorAs(t, err, &perr)
	require.Contains(t, err.Error(), "@bogus")

	_, err = Parse("p.json", []byte("{}"))
	require.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
