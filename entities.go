package proseml

import "strings"

// EntityPair maps a raw character sequence to its HTML entity.
type EntityPair struct {
	Raw    string
	Entity string
}

// DefaultEntities is the substitution table used by DefaultEntityCodec.
var DefaultEntities = []EntityPair{
	{"<", "&lt;"},
	{">", "&gt;"},
	{"&", "&amp;"},
	{"\u2013", "&ndash;"},
	{"\u2014", "&mdash;"},
	{"\u2026", "&hellip;"},
	{"\u00a0", "&nbsp;"},
	{"\u2009", "&thinsp;"},
	{"\u202f", "&#8239;"},
	{"\u02bc", "&rsquo;"},
}

// EntityCodec encodes typographic characters as HTML entities and decodes
// them again. Both directions are a single left-to-right pass, so a
// replacement is never itself replaced.
type EntityCodec struct {
	forward *strings.Replacer
	reverse *strings.Replacer
}

// NewEntityCodec builds a codec from pairs. Raw keys and entity values must
// each be unique for Decode to be the inverse of Encode.
func NewEntityCodec(pairs []EntityPair) *EntityCodec {
	fwd := make([]string, 0, 2*len(pairs))
	rev := make([]string, 0, 2*len(pairs))
	for _, p := range pairs {
		if p.Raw == "" || p.Entity == "" {
			continue
		}
		fwd = append(fwd, p.Raw, p.Entity)
		rev = append(rev, p.Entity, p.Raw)
	}
	return &EntityCodec{
		forward: strings.NewReplacer(fwd...),
		reverse: strings.NewReplacer(rev...),
	}
}

var defaultCodec = NewEntityCodec(DefaultEntities)

// DefaultEntityCodec returns the shared codec for DefaultEntities.
func DefaultEntityCodec() *EntityCodec {
	return defaultCodec
}

// Encode replaces every mapped raw sequence in s with its entity.
func (c *EntityCodec) Encode(s string) string {
	return c.forward.Replace(s)
}

// Decode replaces every mapped entity in s with its raw sequence.
func (c *EntityCodec) Decode(s string) string {
	return c.reverse.Replace(s)
}
