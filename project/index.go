package project

import (
	"strings"

	"pkt.systems/proseml"
)

// Index is a static keyword index. It checks keyword syntax and the keyword
// name but does not track which tags are defined.
type Index struct {
	keys map[string]struct{}
}

var _ proseml.Index = (*Index)(nil)

// NewIndex returns an index accepting keys, or every keyword with a display
// label when keys is empty.
func NewIndex(keys ...string) *Index {
	if len(keys) == 0 {
		keys = proseml.Keywords()
	}
	idx := &Index{keys: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		idx.keys[k] = struct{}{}
	}
	return idx
}

// ScanThis splits a line of the form "@key: value, value" into the keyword
// and its values. pos holds the byte offset of each bit in line. A line is
// valid when the keyword is accepted and at least one value is present; a tag
// line takes exactly one value.
func (idx *Index) ScanThis(line string) (bool, []string, []int) {
	start := len(line) - len(strings.TrimLeft(line, " \t"))
	if !strings.HasPrefix(line[start:], "@") {
		return false, nil, nil
	}
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return false, nil, nil
	}
	key := strings.TrimSpace(line[start:colon])
	bits := []string{key}
	pos := []int{start}

	offset := colon + 1
	for _, part := range strings.Split(line[colon+1:], ",") {
		value := strings.TrimSpace(part)
		if value != "" {
			lead := len(part) - len(strings.TrimLeft(part, " \t"))
			bits = append(bits, value)
			pos = append(pos, offset+lead)
		}
		offset += len(part) + 1
	}

	if _, ok := idx.keys[key]; !ok {
		return false, bits, pos
	}
	if len(bits) < 2 {
		return false, bits, pos
	}
	if key == proseml.KeyTag && len(bits) != 2 {
		return false, bits, pos
	}
	return true, bits, pos
}
