package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors", keyed by argument index.
// It returns an empty Attr when every error is nil.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error", or returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Key records a translation key under "key".
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// KeyFormat records the key inference mode under "key_format".
func KeyFormat[T ~string](format T) slog.Attr {
	return slog.String("key_format", string(format))
}

// Locale records a language tag under "locale". Empty tags yield an empty Attr.
func Locale(lang string) slog.Attr {
	if lang == "" {
		return slog.Attr{}
	}
	return slog.String("locale", lang)
}

// Command records the CLI subcommand under "command".
func Command(name string) slog.Attr {
	return slog.String("command", name)
}

// Source records a catalog location (file path, directory) under "source".
func Source(src string) slog.Attr {
	return slog.String("source", src)
}
