// Package logger builds *slog.Logger instances from functional options.
//
// New picks a text or JSON handler, applies static attributes and, when
// context extractors are registered, appends the attributes they pull from
// the context of each *Context logging call. The attribute helpers in attr.go
// (Key, KeyFormat, Locale, Component, Error) keep field names consistent
// across the normalizer, the translator and the CLI.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("i18nliner"),
//	    logger.WithContextExtractors(i18n.LocaleExtractor),
//	)
//	log.InfoContext(ctx, "translation key inferred", logger.Key(key))
//
// Error and Errors return an empty Attr for nil errors, so they can be passed
// unconditionally.
package logger
