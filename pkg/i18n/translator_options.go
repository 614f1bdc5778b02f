package i18n

import (
	"log/slog"

	"github.com/dmitrymomot/i18nliner/pkg/callhelpers"
	"github.com/dmitrymomot/i18nliner/pkg/logger"
)

// Option is a function that configures a Translator instance.
type Option func(*Translator)

// WithDefaultLanguage sets the locale used when T is called with an empty one.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether a missing entry without a default
// value renders as its key. Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger sets the translator logger. It is also handed to the default
// normalizer.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every lookup miss.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator) {
		t.missingLogMode = log
	}
}

// WithNoLogging disables all logging.
func WithNoLogging() Option {
	return func(t *Translator) {
		t.logger = logger.Discard()
		t.missingLogMode = false
	}
}

// WithNormalizer replaces the call normalizer, e.g. to change the inferred
// key format.
func WithNormalizer(n *callhelpers.Normalizer) Option {
	return func(t *Translator) {
		if n != nil {
			t.normalizer = n
		}
	}
}

// WithCallHelperOptions builds the normalizer from callhelpers options.
func WithCallHelperOptions(opts ...callhelpers.Option) Option {
	return func(t *Translator) {
		t.normalizer = callhelpers.NewNormalizer(opts...)
	}
}

// WithHTMLEscaping escapes translated text and interpolated values so that
// only wrapper templates contribute markup.
func WithHTMLEscaping(escape bool) Option {
	return func(t *Translator) {
		t.escapeHTML = escape
	}
}
