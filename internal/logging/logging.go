// Package logging configures the process-wide slog logger for the proseml
// commands.
package logging

import (
	"log/slog"

	"github.com/iand/pontium/hlog"
	"github.com/kortschak/utter"
	"github.com/spf13/pflag"
)

// Opts holds the values of the logging flags.
var Opts struct {
	Verbose     bool
	VeryVerbose bool
	LogIDs      []string
}

// AddFlags registers the logging flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&Opts.Verbose, "verbose", "v", false, "Set logging level more verbose to include info level logs")
	fs.BoolVar(&Opts.VeryVerbose, "vv", false, "Set logging level more verbose to include debug level logs")
	fs.StringSliceVar(&Opts.LogIDs, "log-ids", nil, "Always emit logging for these ids, comma separated")
}

// Level returns the minimum level selected by Opts.
func Level() slog.Level {
	switch {
	case Opts.VeryVerbose:
		return slog.LevelDebug
	case Opts.Verbose:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// Setup installs an hlog handler as the default slog logger.
func Setup() {
	h := new(hlog.Handler)
	h = h.WithLevel(Level())
	for _, id := range Opts.LogIDs {
		h = h.WithAttrLevel(slog.String("id", id), slog.LevelDebug)
	}

	slog.SetDefault(slog.New(h))
}

// Debug logs at debug level on the default logger.
var Debug = slog.Debug

// Dump logs v at info level, pretty-printed unless it is a string.
func Dump(v any) {
	switch vt := v.(type) {
	case string:
		slog.Info(vt)
	default:
		slog.Info(utter.Sdump(v))
	}
}
