package proseml

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Converter renders token streams to HTML and accumulates the results of
// non-preview renders for assembly into a full document.
type Converter struct {
	cfg        Config
	mode       Mode
	index      Index
	codec      *EntityCodec
	logger     *slog.Logger
	sourceWrap int

	full   []string
	source []string
}

// NewConverter creates a converter for cfg. The default mode is ModeExport.
func NewConverter(cfg Config, opts ...Option) *Converter {
	cfg.ExtraCSS = append([]string(nil), cfg.ExtraCSS...)
	c := &Converter{
		cfg:    cfg,
		mode:   ModeExport,
		codec:  DefaultEntityCodec(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Mode returns the render mode.
func (c *Converter) Mode() Mode { return c.mode }

// Config returns the render settings.
func (c *Converter) Config() Config { return c.cfg }

// Normalize encodes typographic characters in raw document text. Tokenizers
// call it before computing format span positions.
func (c *Converter) Normalize(text string) string {
	return c.codec.Encode(text)
}

// Render converts one document to an HTML fragment. Outside preview mode the
// fragment is also appended to the full result. On error nothing is
// returned or accumulated.
func (c *Converter) Render(tokens []Token) (string, error) {
	r := c.blockRenderer()
	var st renderState
	for i := range tokens {
		if err := r.render(&tokens[i], &st); err != nil {
			return "", err
		}
	}
	if st.para.open() {
		c.logger.Debug("paragraph still open at end of document", "lines", len(st.para.lines))
	}
	result := strings.Join(st.fragments, "")
	if c.mode != ModePreview {
		c.full = append(c.full, result)
		if c.cfg.KeepSource {
			c.source = append(c.source, c.reconstruct(tokens))
		}
	}
	c.logger.Info("rendered document", "mode", c.mode, "tokens", len(tokens), "bytes", len(result))
	return result, nil
}

// FullResult returns a copy of the accumulated fragments in render order.
func (c *Converter) FullResult() []string {
	return append([]string(nil), c.full...)
}

// FullResultSize returns the total length in bytes of the accumulated fragments.
func (c *Converter) FullResultSize() int {
	n := 0
	for _, f := range c.full {
		n += len(f)
	}
	return n
}

// Source returns the reconstructed source of each accumulated document.
// It is empty unless Config.KeepSource is set.
func (c *Converter) Source() []string {
	return append([]string(nil), c.source...)
}

// Reset drops all accumulated output.
func (c *Converter) Reset() {
	c.full = nil
	c.source = nil
}

type renderState struct {
	para      paragraph
	fragments []string
}

func (st *renderState) emit(fragment string) {
	st.fragments = append(st.fragments, fragment)
}

type headingTags struct {
	names   [4]string
	h1Class string
}

// headingTagsFor promotes headings one level for novel documents outside
// preview, keeping level one as a title.
func headingTagsFor(novel bool, mode Mode) headingTags {
	if novel && mode != ModePreview {
		return headingTags{names: [4]string{"h1", "h1", "h2", "h3"}, h1Class: " class='title'"}
	}
	return headingTags{names: [4]string{"h1", "h2", "h3", "h4"}}
}

type blockRenderer struct {
	cfg      Config
	mode     Mode
	tags     TagTable
	headings headingTags
	keywords keywordResolver
	logger   *slog.Logger
}

func (c *Converter) blockRenderer() *blockRenderer {
	tags := HTML5Tags
	if c.mode == ModePreview {
		tags = HTML4Tags
	}
	return &blockRenderer{
		cfg:      c.cfg,
		mode:     c.mode,
		tags:     tags,
		headings: headingTagsFor(c.cfg.Novel, c.mode),
		keywords: keywordResolver{index: c.index, mode: c.mode},
		logger:   c.logger,
	}
}

const skipFragment = "<p class='skip'>&nbsp;</p>\n"

func (r *blockRenderer) render(tok *Token, st *renderState) error {
	switch tok.Kind {
	case TokenEmpty:
		if fragment := st.para.flush(r.cfg.CSS); fragment != "" {
			st.emit(fragment)
		}
	case TokenTitle, TokenHeading1, TokenHeading2, TokenHeading3, TokenHeading4:
		st.emit(r.heading(tok))
	case TokenSeparator:
		st.emit(r.separator(tok))
	case TokenSkip:
		st.emit(skipFragment)
	case TokenText:
		return r.text(tok, st)
	case TokenSynopsis:
		if !r.cfg.Synopsis {
			r.skipped(tok)
			return nil
		}
		st.emit(r.synopsis(tok))
	case TokenComment:
		if !r.cfg.Comments {
			r.skipped(tok)
			return nil
		}
		st.emit(r.comment(tok))
	case TokenKeyword:
		if !r.cfg.Keywords {
			r.skipped(tok)
			return nil
		}
		if fragment := r.keyword(tok); fragment != "" {
			st.emit(fragment)
		}
	default:
		r.logger.Warn("ignoring token of unknown kind", "line", tok.Line, "kind", tok.Kind)
	}
	return nil
}

func (r *blockRenderer) skipped(tok *Token) {
	r.logger.Debug("token kind disabled", "line", tok.Line, "kind", tok.Kind, "text", logText(tok.Text))
}

func (r *blockRenderer) anchor(line int) string {
	if !r.cfg.LinkAnchors {
		return ""
	}
	return fmt.Sprintf("<a name='T%06d'></a>", line)
}

func (r *blockRenderer) heading(tok *Token) string {
	style := styleAttr(tok.Style, r.cfg.CSS)
	text := strings.ReplaceAll(tok.Text, `\\`, lineBreakTag)
	if tok.Kind == TokenTitle {
		return fmt.Sprintf("<h1 class='title'%s>%s%s</h1>\n", style, r.anchor(tok.Line), text)
	}
	level := int(tok.Kind - TokenHeading1)
	name := r.headings.names[level]
	class := ""
	if level == 0 {
		class = r.headings.h1Class
	}
	return fmt.Sprintf("<%s%s%s>%s%s</%s>\n", name, class, style, r.anchor(tok.Line), text, name)
}

func (r *blockRenderer) separator(tok *Token) string {
	return "<p class='sep'>" + tok.Text + "</p>\n"
}

func (r *blockRenderer) text(tok *Token, st *renderState) error {
	line, hardBreak, err := formatLine(tok.Text, tok.Spans, r.tags)
	if err != nil {
		var spanErr *MalformedSpanError
		if errors.As(err, &spanErr) {
			spanErr.Line = tok.Line
		}
		return err
	}
	st.para.add(line, styleAttr(tok.Style, r.cfg.CSS), hardBreak)
	return nil
}

func (r *blockRenderer) synopsis(tok *Token) string {
	if r.mode == ModePreview {
		return "<p class='comment'><span class='synopsis'>Synopsis:</span> " + tok.Text + "</p>\n"
	}
	return "<p class='synopsis'><strong>Synopsis:</strong> " + tok.Text + "</p>\n"
}

func (r *blockRenderer) comment(tok *Token) string {
	if r.mode == ModePreview {
		return "<p class='comment'>" + tok.Text + "</p>\n"
	}
	return "<p class='comment'><strong>Comment:</strong> " + tok.Text + "</p>\n"
}

func (r *blockRenderer) keyword(tok *Token) string {
	body := r.keywords.resolve(tok.Text)
	if body == "" {
		r.logger.Debug("dropping unresolved keyword", "line", tok.Line, "text", logText(tok.Text))
		return ""
	}
	return "<p" + styleAttr(tok.Style, r.cfg.CSS) + ">" + body + "</p>\n"
}
