package i18n

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/i18nliner/pkg/logger"
)

type localeContextKey struct{}

// SetLocale stores the active locale in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale stored in ctx, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return DefaultLanguage
	}
	return locale
}

// LocaleExtractor is a logger.ContextExtractor that logs the locale set with
// SetLocale.
func LocaleExtractor(ctx context.Context) (slog.Attr, bool) {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return slog.Attr{}, false
	}
	return logger.Locale(locale), true
}
