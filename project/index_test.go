package project

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pkt.systems/proseml"
)

func TestIndexScanThis(t *testing.T) {
	idx := NewIndex()

	valid, bits, pos := idx.ScanThis("@char: Jane, John")
	require.True(t, valid)
	require.Equal(t, []string{"@char", "Jane", "John"}, bits)
	require.Equal(t, []int{0, 7, 13}, pos)

	valid, bits, _ = idx.ScanThis("@tag: Jane")
	require.True(t, valid)
	require.Equal(t, []string{"@tag", "Jane"}, bits)
}

func TestIndexRejects(t *testing.T) {
	idx := NewIndex()
	cases := []string{
		"char: Jane",
		"@char Jane",
		"@char:",
		"@char: , ,",
		"@bogus: Jane",
		"@tag: Jane, John",
	}
	for _, line := range cases {
		valid, _, _ := idx.ScanThis(line)
		require.False(t, valid, line)
	}
}

func TestIndexRestrictedKeys(t *testing.T) {
	idx := NewIndex(proseml.KeyTag, proseml.KeyPOV)
	valid, _, _ := idx.ScanThis("@pov: Jane")
	require.True(t, valid)
	valid, _, _ = idx.ScanThis("@char: Jane")
	require.False(t, valid)
}

func TestIndexRendersKeywords(t *testing.T) {
	conv := proseml.NewConverter(proseml.DefaultConfig(), proseml.WithIndex(NewIndex()))
	got, err := conv.Render([]proseml.Token{{Kind: proseml.TokenKeyword, Text: "char: Jane, John"}})
	require.NoError(t, err)
	require.Equal(t, "<p><span class='tags'>Characters:</span> <a href='#tag_Jane'>Jane</a>, <a href='#tag_John'>John</a></p>\n", got)
}
