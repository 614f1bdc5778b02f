// Package i18n resolves i18nliner-style translate calls against a catalog.
//
// Calls are first normalized by callhelpers, so the same call shapes work as
// in source code scanned by an extractor: a bare default string gets an
// inferred key, an explicit dotted key may carry its own default, and a
// pluralization hash can stand in for the default text.
//
//	adapter := i18n.NewDirectoryAdapter(nil, "locales")
//	tr, err := i18n.NewTranslator(ctx, adapter, i18n.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//
//	tr.T(ctx, "de", "Hello world")                              // catalog entry for hello_world_23c21974
//	tr.T(ctx, "en", "cat", map[string]any{"count": 3})          // "3 cats"
//	tr.T(ctx, "en", "Click *here*", map[string]any{"wrapper": "<a>$1</a>"})
//
// # Catalogs
//
// A TranslationAdapter returns locale → nested tree. MapAdapter serves an
// in-memory map, FileAdapter one YAML or JSON file, and FSAdapter (or
// NewDirectoryAdapter) merges every supported file in a directory. Keys are
// looked up flat first, then as dotted paths.
//
// # Resolution
//
// A missing entry falls back to options.defaultValue, pluralization hashes
// are resolved by options.count (zero, one, other), %{name} placeholders are
// filled from options and options.wrapper is applied last.
//
// # Locales
//
// ParseAcceptLanguage and MatchLanguage negotiate locales with
// golang.org/x/text/language. SetLocale and GetLocale carry the active locale
// in a context; LocaleExtractor exposes it to pkg/logger.
package i18n
