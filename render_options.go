package proseml

import "log/slog"

// Option configures a Converter.
type Option func(*Converter)

// WithMode sets the render mode.
func WithMode(mode Mode) Option {
	return func(c *Converter) {
		c.mode = mode
	}
}

// WithPreview switches to preview mode with keyword rendering on and the
// given comment and synopsis settings.
func WithPreview(comments, synopsis bool) Option {
	return func(c *Converter) {
		c.mode = ModePreview
		c.cfg.Keywords = true
		c.cfg.Comments = comments
		c.cfg.Synopsis = synopsis
	}
}

// WithIndex sets the keyword index. Without one, keyword tokens render empty.
func WithIndex(index Index) Option {
	return func(c *Converter) {
		c.index = index
	}
}

// WithLogger sets the logger used for render diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSourceWrap wraps reconstructed source text lines at width columns.
// Zero disables wrapping.
func WithSourceWrap(width int) Option {
	return func(c *Converter) {
		c.sourceWrap = width
	}
}

// WithEntityCodec replaces the default entity codec.
func WithEntityCodec(codec *EntityCodec) Option {
	return func(c *Converter) {
		if codec != nil {
			c.codec = codec
		}
	}
}
