package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrymomot/i18nliner/pkg/callhelpers"
	"github.com/dmitrymomot/i18nliner/pkg/logger"
	"github.com/dmitrymomot/i18nliner/pkg/sanitizer"
)

// WrapperOption is the translate option holding wrapper templates.
const WrapperOption = "wrapper"

// defaultKeyCacheSize bounds the inferred key memo of the default normalizer.
const defaultKeyCacheSize = 1024

// CountOption is the translate option that selects a pluralization category.
const CountOption = "count"

// Translator resolves translate calls against a catalog loaded by a
// TranslationAdapter. Calls are normalized with callhelpers first, so every
// call shape accepted by Normalizer.InferArguments works here.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	escapeHTML     bool
	logger         *slog.Logger
	normalizer     *callhelpers.Normalizer
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator loads the catalog from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
		adapter:       adapter,
	}
	for _, option := range options {
		option(t)
	}
	if t.normalizer == nil {
		t.normalizer = callhelpers.NewNormalizer(
			callhelpers.WithLogger(t.logger),
			callhelpers.WithKeyCache(defaultKeyCacheSize),
		)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload replaces the catalog with a fresh copy from the adapter. The old
// catalog stays in place when loading fails.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	if err := t.validateTranslations(ctx, translations); err != nil {
		return err
	}

	t.mu.Lock()
	t.translations = translations
	langs := t.supportedLanguages()
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", langs))
	return nil
}

func (t *Translator) validateTranslations(ctx context.Context, trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.WarnContext(ctx, "no translations provided")
		return nil
	}
	for lang, tree := range trans {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		if tree == nil {
			return fmt.Errorf("%w: nil translations for %q", ErrInvalidCatalog, lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// SupportedLanguages returns the catalog locales in sorted order.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the locale used when none is given.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Normalizer returns the normalizer used to infer keys.
func (t *Translator) Normalizer() *callhelpers.Normalizer {
	return t.normalizer
}

// HasTranslation reports whether lang's catalog has an entry for key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates a call given in any supported shape:
//
//	t.T(ctx, "en", "Hello world")
//	t.T(ctx, "en", "greeting.hello", "Hello %{name}", map[string]any{"name": "Ann"})
//	t.T(ctx, "en", "cat", map[string]any{"count": 3})
//	t.T(ctx, "en", "Click *here*", map[string]any{"wrapper": "<a>$1</a>"})
//
// An empty lang means the default language.
func (t *Translator) T(ctx context.Context, lang string, args ...any) (string, error) {
	out, err := t.normalizer.InferArguments(callhelpers.FromArgs(args...), nil)
	if err != nil {
		return "", err
	}
	return t.Translate(ctx, lang, out[0].Str(), out[1].Map())
}

// Tc is T with the locale taken from ctx (see SetLocale).
func (t *Translator) Tc(ctx context.Context, args ...any) (string, error) {
	return t.T(ctx, GetLocale(ctx), args...)
}

// Translate resolves an already normalized key and options.
//
// A missing entry falls back to options.defaultValue, then to the key itself
// unless WithFallbackToKey(false) was set. Pluralization hashes are resolved
// by options.count, %{name} placeholders are filled from options, and
// options.wrapper is applied last. With WithHTMLEscaping the text and the
// interpolated values are escaped before wrappers add markup.
func (t *Translator) Translate(ctx context.Context, lang, key string, options *callhelpers.Map) (string, error) {
	if lang == "" {
		lang = t.defaultLang
	}

	t.mu.RLock()
	entry, found := t.lookup(lang, key)
	t.mu.RUnlock()

	var value callhelpers.Value
	if found {
		value = callhelpers.FromAny(entry)
	} else {
		if t.missingLogMode {
			t.logger.WarnContext(ctx, "translation missing", slog.String("lang", lang), logger.Key(key))
		}
		def := options.Get(callhelpers.DefaultValueKey)
		if def.IsAbsent() {
			if !t.fallbackToKey {
				return "", fmt.Errorf("%w: %s", ErrTranslationMissing, key)
			}
			def = callhelpers.String(key)
		}
		value = t.normalizer.KeyInferrer().NormalizeDefault(def, options)
	}

	text, err := resolveText(value, options.Get(CountOption))
	if err != nil {
		if t.missingLogMode {
			t.logger.WarnContext(ctx, "translation unusable", slog.String("lang", lang), logger.Key(key), logger.Error(err))
		}
		return "", fmt.Errorf("%w: %s", err, key)
	}

	escape := identity
	if t.escapeHTML {
		escape = sanitizer.EscapeHTML
		text = escape(text)
	}
	text = interpolate(text, options, escape)

	if w := options.Get(WrapperOption); !w.IsAbsent() {
		wrappers, err := callhelpers.WrappersFromValue(w)
		if err != nil {
			return "", err
		}
		text = callhelpers.ApplyWrappers(text, wrappers)
	}
	return text, nil
}

// ExportJSON returns lang's catalog as JSON, for client-side lookups.
func (t *Translator) ExportJSON(lang string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	translations, ok := t.translations[lang]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLanguageNotSupported, lang)
	}

	b, err := json.Marshal(translations)
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}
	return string(b), nil
}

// lookup finds key in lang's catalog, falling back to the closest supported
// locale (en-US → en). Caller holds t.mu.
func (t *Translator) lookup(lang, key string) (any, bool) {
	tree, ok := t.translations[lang]
	if !ok {
		matched, ok := MatchLanguage(lang, t.supportedLanguages())
		if !ok {
			return nil, false
		}
		tree = t.translations[matched]
	}
	return getTranslation(tree, key)
}

// getTranslation looks key up as a flat entry first, then as a dotted path.
// The flat lookup keeps raw inferred keys containing dots reachable.
func getTranslation(m map[string]any, key string) (any, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}

	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return next, true
		}
		current, ok = next.(map[string]any)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

// resolveText turns a catalog or default value into a template string,
// selecting a pluralization category when needed.
func resolveText(v callhelpers.Value, count callhelpers.Value) (string, error) {
	switch v.Kind() {
	case callhelpers.KindString, callhelpers.KindNumber, callhelpers.KindBool:
		return v.Text(), nil
	case callhelpers.KindMap:
		if !callhelpers.IsPluralizationHash(v) {
			return "", ErrTranslationNotString
		}
		category := pluralCategory(v.Map(), count)
		form := v.Map().Get(category)
		if !form.IsString() {
			return "", fmt.Errorf("%w: %s", ErrMissingPluralCategory, category)
		}
		return form.Str(), nil
	default:
		return "", ErrTranslationNotString
	}
}

// pluralCategory applies English-style selection: zero for 0 when present,
// one for 1, other otherwise. Missing categories fall back to other.
func pluralCategory(hash *callhelpers.Map, count callhelpers.Value) string {
	n, ok := countOf(count)
	if !ok {
		return callhelpers.PluralOther
	}
	switch {
	case n == 0 && hash.Has(callhelpers.PluralZero):
		return callhelpers.PluralZero
	case n == 1 && hash.Has(callhelpers.PluralOne):
		return callhelpers.PluralOne
	default:
		return callhelpers.PluralOther
	}
}

func countOf(v callhelpers.Value) (float64, bool) {
	switch {
	case v.IsNumber():
		return v.Num(), true
	case v.IsString():
		n, err := strconv.ParseFloat(strings.TrimSpace(v.Str()), 64)
		return n, err == nil
	}
	return 0, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func identity(s string) string { return s }

// interpolate replaces %{name} with escape(options[name]). Unknown names are kept.
func interpolate(tmpl string, options *callhelpers.Map, escape func(string) string) string {
	if !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		v := options.Get(match[2 : len(match)-1])
		if v.IsAbsent() {
			return match
		}
		return escape(v.Text())
	})
}
