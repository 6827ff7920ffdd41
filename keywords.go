package proseml

import (
	"fmt"
	"strings"
)

// Index validates and splits keyword lines such as "@char: Jane, John".
// bits holds the keyword followed by its values; pos holds the offset of each
// bit in line.
type Index interface {
	ScanThis(line string) (valid bool, bits []string, pos []int)
}

// Keywords understood by the renderer.
const (
	KeyTag      = "@tag"
	KeyPOV      = "@pov"
	KeyFocus    = "@focus"
	KeyChar     = "@char"
	KeyPlot     = "@plot"
	KeyTime     = "@time"
	KeyLocation = "@location"
	KeyObject   = "@object"
	KeyEntity   = "@entity"
	KeyCustom   = "@custom"
)

var keywordLabels = map[string]string{
	KeyTag:      "Tag",
	KeyPOV:      "Point of View",
	KeyFocus:    "Focus",
	KeyChar:     "Characters",
	KeyPlot:     "Plot",
	KeyTime:     "Timeline",
	KeyLocation: "Locations",
	KeyObject:   "Objects",
	KeyEntity:   "Entities",
	KeyCustom:   "Custom",
}

// KeywordLabel returns the display label of a keyword.
func KeywordLabel(key string) (string, bool) {
	label, ok := keywordLabels[key]
	return label, ok
}

// Keywords returns all keywords with a display label, in label table order.
func Keywords() []string {
	return []string{KeyTag, KeyPOV, KeyFocus, KeyChar, KeyPlot, KeyTime, KeyLocation, KeyObject, KeyEntity, KeyCustom}
}

type keywordResolver struct {
	index Index
	mode  Mode
}

// resolve renders a keyword line. Lines the index rejects render as "".
func (r keywordResolver) resolve(text string) string {
	if r.index == nil {
		return ""
	}
	valid, bits, _ := r.index.ScanThis("@" + text)
	if !valid || len(bits) == 0 {
		return ""
	}
	label, ok := keywordLabels[bits[0]]
	if !ok {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "<span class='tags'>%s:</span> ", label)
	if len(bits) < 2 {
		return b.String()
	}
	if bits[0] == KeyTag {
		fmt.Fprintf(&b, "<a name='tag_%s'>%s</a>", bits[1], bits[1])
		return b.String()
	}
	for i, tag := range bits[1:] {
		if i > 0 {
			b.WriteString(", ")
		}
		if r.mode == ModePreview {
			fmt.Fprintf(&b, "<a href='#%s=%s'>%s</a>", strings.TrimPrefix(bits[0], "@"), tag, tag)
		} else {
			fmt.Fprintf(&b, "<a href='#tag_%s'>%s</a>", tag, tag)
		}
	}
	return b.String()
}
