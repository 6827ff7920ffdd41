package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/version"

	"pkt.systems/proseml"
	"pkt.systems/proseml/internal/logging"
	"pkt.systems/proseml/project"
	"pkt.systems/proseml/tokenfile"
)

func init() {
	version.SetDefaultModule("pkt.systems/proseml")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	projectPath string
	modeName    string
	outPath     string
	noCSS       bool
	anchors     bool
	comments    bool
	synopsis    bool
	noKeywords  bool
	title       string
	tabWidth    int
	extraCSS    []string
	sourcePath  string
	sourceWrap  int
	reportPath  string
	showVersion bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	defaults := proseml.DefaultConfig()
	flags := pflag.NewFlagSet("proseml", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.projectPath, "project", "p", "", "Project settings file (.toml, .yaml or .yml)")
	flags.StringVarP(&opts.modeName, "mode", "m", "export", "Render mode: preview|export|ebook")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&opts.noCSS, "no-css", false, "Disable the generated stylesheet and inline styles")
	flags.BoolVar(&opts.anchors, "anchors", false, "Emit line anchors before headings")
	flags.BoolVar(&opts.comments, "comments", false, "Include comments")
	flags.BoolVar(&opts.synopsis, "synopsis", false, "Include synopsis comments")
	flags.BoolVar(&opts.noKeywords, "no-keywords", false, "Drop keyword lines")
	flags.StringVar(&opts.title, "title", "", "Document title")
	flags.IntVar(&opts.tabWidth, "tab-width", defaults.TabWidth, "Placeholders per tab (0 keeps tabs as &#09;)")
	flags.StringSliceVar(&opts.extraCSS, "extra-css", nil, "Extra stylesheet appended to the generated one (repeatable)")
	flags.StringVar(&opts.sourcePath, "source", "", "Write the reconstructed source to this file")
	flags.IntVar(&opts.sourceWrap, "source-wrap", 0, "Wrap reconstructed source text at this width (0 disables)")
	flags.StringVar(&opts.reportPath, "report", "", "Write a JSON render report to this file (- for stderr)")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")
	logging.AddFlags(flags)

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: proseml [flags] [tokens.json...]\n")
		fmt.Fprintln(stderr, "\nEach input is rendered as one document. If no input is provided, tokens are read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	logging.Setup()

	mode, err := proseml.ParseMode(opts.modeName)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --mode: %v\n", err)
		return 2
	}

	cfg := defaults
	var index proseml.Index = project.NewIndex()
	var cssPaths []string
	if opts.projectPath != "" {
		settings, err := project.Load(normalizePath(opts.projectPath))
		if err != nil {
			fmt.Fprintf(stderr, "load project: %v\n", err)
			return 2
		}
		cfg = settings.Config()
		index = settings.Index()
		cssPaths = append(cssPaths, settings.Render.ExtraCSS...)
	}
	applyFlags(&cfg, flags, opts)
	cssPaths = append(cssPaths, opts.extraCSS...)
	if err := loadExtraCSS(&cfg, cssPaths); err != nil {
		fmt.Fprintf(stderr, "extra css: %v\n", err)
		return 2
	}
	if logging.Opts.VeryVerbose {
		logging.Dump(cfg)
	}

	conv := proseml.NewConverter(cfg,
		proseml.WithMode(mode),
		proseml.WithIndex(index),
		proseml.WithLogger(slog.Default()),
		proseml.WithSourceWrap(opts.sourceWrap),
	)

	inputs := flags.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	rep := newReport(mode)
	var preview strings.Builder
	for _, raw := range inputs {
		src, err := makeInputSource(raw, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "open input: %v\n", err)
			return 1
		}
		data, err := src.readAll()
		if err != nil {
			fmt.Fprintf(stderr, "read %s: %v\n", src.name, err)
			return 1
		}
		tokens, err := tokenfile.Decode(data)
		if err != nil {
			fmt.Fprintf(stderr, "decode %s: %v\n", src.name, err)
			return 1
		}
		logging.Debug("decoded token file", "id", src.name, "tokens", len(tokens))
		fragment, err := conv.Render(tokens)
		if err != nil {
			fmt.Fprintf(stderr, "render %s: %v\n", src.name, err)
			return 1
		}
		preview.WriteString(fragment)
		if err := rep.add(src.name, len(tokens), len(fragment)); err != nil {
			fmt.Fprintf(stderr, "report: %v\n", err)
			return 1
		}
	}

	if err := writeOutput(conv, mode, opts.outPath, preview.String(), stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	if opts.sourcePath != "" && mode != proseml.ModePreview {
		if err := writeSource(conv, opts.sourcePath); err != nil {
			fmt.Fprintf(stderr, "write source: %v\n", err)
			return 1
		}
	}
	if opts.reportPath != "" {
		if err := rep.finish(conv); err != nil {
			fmt.Fprintf(stderr, "report: %v\n", err)
			return 1
		}
		if err := rep.write(opts.reportPath, stderr); err != nil {
			fmt.Fprintf(stderr, "write report: %v\n", err)
			return 1
		}
	}
	return 0
}

// applyFlags overrides cfg with the flags given on the command line.
func applyFlags(cfg *proseml.Config, flags *pflag.FlagSet, opts options) {
	if flags.Changed("no-css") {
		cfg.CSS = !opts.noCSS
	}
	if flags.Changed("anchors") {
		cfg.LinkAnchors = opts.anchors
	}
	if flags.Changed("comments") {
		cfg.Comments = opts.comments
	}
	if flags.Changed("synopsis") {
		cfg.Synopsis = opts.synopsis
	}
	if flags.Changed("no-keywords") {
		cfg.Keywords = !opts.noKeywords
	}
	if flags.Changed("title") {
		cfg.Title = opts.title
	}
	if flags.Changed("tab-width") {
		cfg.TabWidth = opts.tabWidth
	}
	if opts.sourcePath != "" {
		cfg.KeepSource = true
	}
}

func loadExtraCSS(cfg *proseml.Config, paths []string) error {
	for _, path := range paths {
		data, err := os.ReadFile(normalizePath(path))
		if err != nil {
			return err
		}
		rules, err := proseml.ParseExtraCSS(string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		cfg.ExtraCSS = append(cfg.ExtraCSS, rules...)
	}
	return nil
}

func writeOutput(conv *proseml.Converter, mode proseml.Mode, outPath, preview string, stdout, stderr io.Writer) error {
	if mode == proseml.ModePreview {
		writer, closeOut, err := resolveOutput(outPath, stdout)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		if closeOut != nil {
			defer func() { _ = closeOut.Close() }()
		}
		if _, err := io.WriteString(writer, preview); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	if strings.TrimSpace(outPath) != "" {
		clean := normalizePath(outPath)
		if err := ensureDir(clean); err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		return conv.SaveHTML5(clean)
	}
	if isTerminal(stdout) {
		fmt.Fprintln(stderr, "warning: writing a full HTML document to the terminal; use -o/--output")
	}
	if err := conv.WriteHTML5(stdout); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func writeSource(conv *proseml.Converter, path string) error {
	writer, closeOut, err := resolveOutput(path, nil)
	if err != nil {
		return err
	}
	defer func() { _ = closeOut.Close() }()
	_, err = io.WriteString(writer, strings.Join(conv.Source(), "\n"))
	return err
}

type inputSource struct {
	name string
	open func() (io.Reader, io.Closer, error)
}

func (s inputSource) readAll() ([]byte, error) {
	reader, closer, err := s.open()
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	return io.ReadAll(reader)
}

func makeInputSource(raw string, stdin io.Reader) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	if raw == "-" {
		return inputSource{name: "stdin", open: func() (io.Reader, io.Closer, error) {
			return stdin, nil, nil
		}}, nil
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{name: raw, open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{name: path, open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{name: raw, open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string, fallback io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return fallback, nil, nil
	}
	clean := normalizePath(path)
	if err := ensureDir(clean); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		return os.MkdirAll(dir, 0o755)
	}
	return nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
