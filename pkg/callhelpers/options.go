package callhelpers

import (
	"io"
	"log/slog"
)

// Option configures a KeyInferrer or Normalizer.
type Option func(*options)

type options struct {
	cfg        Config
	pluralizer Pluralizer
	logger     *slog.Logger
	keyCache   int
}

func newOptions(opts []Option) *options {
	o := &options{
		cfg:        DefaultConfig(),
		pluralizer: InflectionPluralizer{},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithConfig replaces the whole key inference config.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithKeyFormat sets the inferred key format.
func WithKeyFormat(f KeyFormat) Option {
	return func(o *options) {
		o.cfg.InferredKeyFormat = f
	}
}

// WithUnderscoredKeyLength sets the maximum length of slug-derived keys.
// Non-positive values are ignored.
func WithUnderscoredKeyLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.cfg.UnderscoredKeyLength = n
		}
	}
}

// WithAllowBlankDefault controls whether an absent default can seed a key.
func WithAllowBlankDefault(allow bool) Option {
	return func(o *options) {
		o.cfg.AllowBlankDefault = allow
	}
}

// WithPluralizer replaces the plural-form composer.
func WithPluralizer(p Pluralizer) Option {
	return func(o *options) {
		if p != nil {
			o.pluralizer = p
		}
	}
}

// WithLogger sets the logger. If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithKeyCache memoizes up to size inferred keys per KeyInferrer.
// Non-positive sizes disable the cache, which is the default.
func WithKeyCache(size int) Option {
	return func(o *options) {
		o.keyCache = size
	}
}
