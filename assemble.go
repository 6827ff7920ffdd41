package proseml

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode"
)

const (
	defaultTabSpace = "&nbsp;"
	tabEntity       = "&#09;"
)

// ReplaceTabs returns a copy of fragments with each tab replaced by n copies
// of space.
func ReplaceTabs(fragments []string, n int, space string) []string {
	run := strings.Repeat(space, n)
	out := make([]string, len(fragments))
	for i, f := range fragments {
		out[i] = strings.ReplaceAll(f, "\t", run)
	}
	return out
}

func tabRun(cfg Config) string {
	if cfg.TabWidth <= 0 {
		return tabEntity
	}
	space := cfg.TabSpace
	if space == "" {
		space = defaultTabSpace
	}
	return strings.Repeat(space, cfg.TabWidth)
}

// Assemble joins document fragments and wraps them in a complete HTML5
// document with the stylesheet for cfg. The title is inserted as is.
func Assemble(fragments []string, cfg Config) string {
	styles := StyleSheet(cfg)
	styles = append(styles, articleRule)
	if cfg.CSS {
		styles = append(styles, cfg.ExtraCSS...)
	}

	body := strings.Join(fragments, "")
	body = strings.ReplaceAll(body, "\t", tabRun(cfg))
	body = strings.TrimRightFunc(body, unicode.IsSpace)

	var b strings.Builder
	b.Grow(len(body) + 1024)
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html>\n")
	b.WriteString("<head>\n")
	b.WriteString("<meta charset='utf-8'>\n")
	b.WriteString("<title>" + cfg.Title + "</title>\n")
	b.WriteString("</head>\n")
	b.WriteString("<style>\n")
	b.WriteString(strings.Join(styles, "\n"))
	b.WriteString("\n</style>\n")
	b.WriteString("<body>\n")
	b.WriteString("<article>\n")
	b.WriteString(body)
	b.WriteString("\n</article>\n")
	b.WriteString("</body>\n")
	b.WriteString("</html>\n")
	return b.String()
}

// ReplaceTabs expands tabs in the accumulated fragments in place.
func (c *Converter) ReplaceTabs(n int, space string) {
	c.full = ReplaceTabs(c.full, n, space)
}

// Assemble returns the full HTML5 document for all accumulated fragments.
func (c *Converter) Assemble() string {
	return Assemble(c.full, c.cfg)
}

// WriteHTML5 writes the full HTML5 document to w.
func (c *Converter) WriteHTML5(w io.Writer) error {
	_, err := io.WriteString(w, c.Assemble())
	return err
}

// SaveHTML5 writes the full HTML5 document to a UTF-8 file at path.
func (c *Converter) SaveHTML5(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &PersistenceError{Path: path, Err: cerr}
		}
	}()
	bw := bufio.NewWriter(f)
	if err := c.WriteHTML5(bw); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	c.logger.Info("saved html", "path", path, "documents", len(c.full), "bytes", c.FullResultSize())
	return nil
}
