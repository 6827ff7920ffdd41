package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/proseml"
	"pkt.systems/proseml/project"
	"pkt.systems/proseml/tokenfile"
)

const tokensSuffix = ".tokens.json"

var modes = []proseml.Mode{proseml.ModePreview, proseml.ModeExport, proseml.ModeEbook}

func main() {
	root := "testdata"
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, tokensSuffix) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no token files found under %s", root)
	}
	for _, path := range paths {
		tokens, err := tokenfile.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		for _, mode := range modes {
			conv := proseml.NewConverter(goldenConfig(), proseml.WithMode(mode), proseml.WithIndex(project.NewIndex()))
			out, err := conv.Render(tokens)
			if err != nil {
				fatalf("render %s mode %s: %v", path, mode, err)
			}
			goldenPath := goldenModePath(path, mode)
			if err := os.WriteFile(goldenPath, []byte(out), 0o644); err != nil {
				fatalf("write %s: %v", goldenPath, err)
			}
			fmt.Fprintf(os.Stdout, "wrote %s\n", goldenPath)
		}
	}
}

func goldenConfig() proseml.Config {
	cfg := proseml.DefaultConfig()
	cfg.Novel = true
	cfg.LinkAnchors = true
	cfg.Comments = true
	cfg.Synopsis = true
	return cfg
}

func goldenModePath(tokensPath string, mode proseml.Mode) string {
	return strings.TrimSuffix(tokensPath, tokensSuffix) + "." + mode.String() + ".golden"
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
