package proseml

import "testing"

func TestEntityCodecEncode(t *testing.T) {
	codec := DefaultEntityCodec()
	cases := []struct {
		in, want string
	}{
		{"a < b > c & d", "a &lt; b &gt; c &amp; d"},
		{"<a & b>", "&lt;a &amp; b&gt;"},
		{"wait\u2026 \u2013 now\u2014", "wait&hellip; &ndash; now&mdash;"},
		{"10\u00a0km\u2009\u202f", "10&nbsp;km&thinsp;&#8239;"},
		{"it\u02bcs", "it&rsquo;s"},
		{"&lt;", "&amp;lt;"},
		{"plain", "plain"},
	}
	for _, tc := range cases {
		if got := codec.Encode(tc.in); got != tc.want {
			t.Fatalf("Encode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEntityCodecRoundTrip(t *testing.T) {
	codec := DefaultEntityCodec()
	inputs := []string{
		"Tom & Jerry <3 \u2014 forever\u2026",
		"&amp; already escaped &lt;tag&gt;",
		"it\u02bcs 5\u00a0pm",
	}
	for _, in := range inputs {
		if got := codec.Decode(codec.Encode(in)); got != in {
			t.Fatalf("round trip %q gave %q", in, got)
		}
	}
}

func TestEntityCodecCustomPairs(t *testing.T) {
	codec := NewEntityCodec([]EntityPair{{"\u00a9", "&copy;"}, {"", "&skip;"}})
	if got := codec.Encode("\u00a9 2024 <x>"); got != "&copy; 2024 <x>" {
		t.Fatalf("unexpected encode %q", got)
	}
	if got := codec.Decode("&copy;&skip;"); got != "\u00a9&skip;" {
		t.Fatalf("unexpected decode %q", got)
	}
}

func TestConverterNormalizeUsesCodec(t *testing.T) {
	conv := NewConverter(DefaultConfig())
	if got := conv.Normalize("a\u2014b"); got != "a&mdash;b" {
		t.Fatalf("unexpected normalize %q", got)
	}
	custom := NewEntityCodec([]EntityPair{{"--", "&mdash;"}})
	conv = NewConverter(DefaultConfig(), WithEntityCodec(custom))
	if got := conv.Normalize("a--b<"); got != "a&mdash;b<" {
		t.Fatalf("unexpected custom normalize %q", got)
	}
}
