package proseml

import (
	"strings"
	"testing"
)

// fakeIndex accepts "@key: a, b" lines for the keys it knows.
type fakeIndex struct {
	keys map[string]bool
}

func (f fakeIndex) ScanThis(line string) (bool, []string, []int) {
	key, rest, ok := strings.Cut(line, ":")
	if !ok || !f.keys[key] {
		return false, nil, nil
	}
	bits := []string{key}
	pos := []int{0}
	for _, v := range strings.Split(rest, ",") {
		if v = strings.TrimSpace(v); v != "" {
			bits = append(bits, v)
			pos = append(pos, strings.Index(line, v))
		}
	}
	return true, bits, pos
}

func newFakeIndex(keys ...string) fakeIndex {
	f := fakeIndex{keys: map[string]bool{}}
	for _, k := range keys {
		f.keys[k] = true
	}
	return f
}

func TestKeywordResolve(t *testing.T) {
	idx := newFakeIndex(KeyTag, KeyChar, "@mood")
	cases := []struct {
		name string
		mode Mode
		text string
		want string
	}{
		{"tag", ModeExport, "tag: Jane", "<span class='tags'>Tag:</span> <a name='tag_Jane'>Jane</a>"},
		{"tag preview", ModePreview, "tag: Jane", "<span class='tags'>Tag:</span> <a name='tag_Jane'>Jane</a>"},
		{"refs export", ModeEbook, "char: Jane, John", "<span class='tags'>Characters:</span> <a href='#tag_Jane'>Jane</a>, <a href='#tag_John'>John</a>"},
		{"refs preview", ModePreview, "char: Jane, John", "<span class='tags'>Characters:</span> <a href='#char=Jane'>Jane</a>, <a href='#char=John'>John</a>"},
		{"no values", ModeExport, "char:", "<span class='tags'>Characters:</span> "},
		{"invalid", ModeExport, "pov: Jane", ""},
		{"no label", ModeExport, "mood: dark", ""},
	}
	for _, tc := range cases {
		r := keywordResolver{index: idx, mode: tc.mode}
		if got := r.resolve(tc.text); got != tc.want {
			t.Fatalf("%s:\n got %q\nwant %q", tc.name, got, tc.want)
		}
	}
	if got := (keywordResolver{}).resolve("tag: Jane"); got != "" {
		t.Fatalf("nil index should resolve to empty, got %q", got)
	}
}

func TestKeywordLabels(t *testing.T) {
	for _, key := range Keywords() {
		if label, ok := KeywordLabel(key); !ok || label == "" {
			t.Fatalf("keyword %s has no label", key)
		}
	}
	if label, _ := KeywordLabel(KeyPOV); label != "Point of View" {
		t.Fatalf("unexpected pov label %q", label)
	}
	if _, ok := KeywordLabel("@mood"); ok {
		t.Fatalf("unexpected label for @mood")
	}
}
