package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tidwall/sjson"

	"pkt.systems/proseml"
)

// report collects per-document render statistics as JSON.
type report struct {
	json string
	docs int
}

func newReport(mode proseml.Mode) *report {
	r := &report{json: "{}"}
	r.json, _ = sjson.Set(r.json, "mode", mode.String())
	return r
}

func (r *report) add(input string, tokens, bytes int) error {
	prefix := fmt.Sprintf("documents.%d.", r.docs)
	var err error
	if r.json, err = sjson.Set(r.json, prefix+"input", input); err != nil {
		return err
	}
	if r.json, err = sjson.Set(r.json, prefix+"tokens", tokens); err != nil {
		return err
	}
	if r.json, err = sjson.Set(r.json, prefix+"bytes", bytes); err != nil {
		return err
	}
	r.docs++
	return nil
}

func (r *report) finish(conv *proseml.Converter) error {
	var err error
	if r.json, err = sjson.Set(r.json, "count", r.docs); err != nil {
		return err
	}
	r.json, err = sjson.Set(r.json, "full_size", conv.FullResultSize())
	return err
}

func (r *report) write(path string, stderr io.Writer) error {
	if path == "-" {
		_, err := fmt.Fprintln(stderr, r.json)
		return err
	}
	clean := normalizePath(path)
	if err := ensureDir(clean); err != nil {
		return err
	}
	return os.WriteFile(clean, []byte(r.json+"\n"), 0o644)
}
