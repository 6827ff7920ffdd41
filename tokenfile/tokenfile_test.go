package tokenfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pkt.systems/proseml"
)

const sample = `{"tokens": [
  {"kind": "title", "line": 1, "text": "Chapter One"},
  {"kind": "text", "line": 3, "text": "It was **late**.",
   "format": [[7, 2, "bold_open"], [13, 2, "bold_close"]],
   "style": {"align": "centre", "break_before": "always", "zero_top_margin": true}},
  {"kind": "empty", "line": 4}
]}`

func TestDecode(t *testing.T) {
	got, err := Decode([]byte(sample))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []proseml.Token{
		{Kind: proseml.TokenTitle, Line: 1, Text: "Chapter One"},
		{
			Kind: proseml.TokenText,
			Line: 3,
			Text: "It was **late**.",
			Spans: []proseml.FormatSpan{
				{Pos: 7, Len: 2, Kind: proseml.FormatBoldOpen},
				{Pos: 13, Len: 2, Kind: proseml.FormatBoldClose},
			},
			Style: &proseml.StyleFlags{
				Align:         proseml.AlignCenter,
				BreakBefore:   proseml.PageBreakAlways,
				ZeroTopMargin: true,
			},
		},
		{Kind: proseml.TokenEmpty, Line: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRenders(t *testing.T) {
	tokens, err := Decode([]byte(sample))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	conv := proseml.NewConverter(proseml.DefaultConfig())
	got, err := conv.Render(tokens)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "<h1 class='title'>Chapter One</h1>\n" +
		"<p style='text-align: center; page-break-before: always; margin-top: 0;'>It was <strong>late</strong>.</p>\n"
	if got != want {
		t.Fatalf("render mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		field string
	}{
		{"kind", `{"tokens":[{"kind":"chapter"}]}`, "kind"},
		{"span shape", `{"tokens":[{"kind":"text","format":[[1,2]]}]}`, "format"},
		{"span kind", `{"tokens":[{"kind":"text","format":[[1,2,"underline"]]}]}`, "format"},
		{"span numbers", `{"tokens":[{"kind":"text","format":[["1",2,"bold_open"]]}]}`, "format"},
		{"style", `{"tokens":[{"kind":"text","style":{"align":"middle"}}]}`, "style"},
		{"not object", `{"tokens":[{"kind":"text"}, 3]}`, "token"},
	}
	for _, tc := range cases {
		_, err := Decode([]byte(tc.input))
		var derr *DecodeError
		if !errors.As(err, &derr) {
			t.Fatalf("%s: expected DecodeError, got %v", tc.name, err)
		}
		if derr.Field != tc.field {
			t.Fatalf("%s: field %q, want %q", tc.name, derr.Field, tc.field)
		}
	}

	if _, err := Decode([]byte(`{"tokens": [`)); !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}
}

func TestDecodeWithoutTokens(t *testing.T) {
	tokens, err := Decode([]byte(`{}`))
	if err != nil || len(tokens) != 0 {
		t.Fatalf("expected no tokens, got %v, %v", tokens, err)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.tokens.json")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	tokens, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
}

func TestDecodeRejectsBinaryAndSanitizes(t *testing.T) {
	if _, err := Decode([]byte{'{', 0xff, '}'}); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
	if _, err := Decode([]byte("{\"tokens\":[]}\x00")); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	tokens, err := Decode([]byte(`{"tokens":[{"kind":"text","text":"a\u0007b\tc\nd"}]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tokens[0].Text != "ab\tcd" {
		t.Fatalf("unexpected text %q", tokens[0].Text)
	}
}

func TestDecodeSanitizeKeepsSpansAligned(t *testing.T) {
	input := `{"tokens":[
  {"kind":"text","line":1,"text":"a\u000b**b**","format":[[2,2,"bold_open"],[5,2,"bold_close"]]},
  {"kind":"text","line":2,"text":"_c\u0001d_","format":[[0,1,"italic_open"],[4,1,"italic_close"]]},
  {"kind":"empty","line":3}
]}`
	tokens, err := Decode([]byte(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	wantSpans := [][]proseml.FormatSpan{
		{{Pos: 1, Len: 2, Kind: proseml.FormatBoldOpen}, {Pos: 4, Len: 2, Kind: proseml.FormatBoldClose}},
		{{Pos: 0, Len: 1, Kind: proseml.FormatItalicOpen}, {Pos: 3, Len: 1, Kind: proseml.FormatItalicClose}},
	}
	for i, want := range wantSpans {
		if diff := cmp.Diff(want, tokens[i].Spans); diff != "" {
			t.Fatalf("token %d spans (-want +got):\n%s", i, diff)
		}
	}
	got, err := proseml.NewConverter(proseml.DefaultConfig()).Render(tokens)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "<p>a<strong>b</strong> <em>cd</em></p>\n"; got != want {
		t.Fatalf("render mismatch:\n got %q\nwant %q", got, want)
	}
}
