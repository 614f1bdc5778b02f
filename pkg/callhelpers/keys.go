package callhelpers

import (
	"fmt"
	"hash/crc32"
	"log/slog"
	"regexp"
	"strconv"
	"unicode/utf16"

	"github.com/jinzhu/inflection"

	"github.com/dmitrymomot/i18nliner/pkg/cache"
	"github.com/dmitrymomot/i18nliner/pkg/slug"
)

// Pluralizer composes the plural surface form of a singular noun.
type Pluralizer interface {
	Plural(word string) string
}

// PluralizerFunc adapts a function to Pluralizer.
type PluralizerFunc func(word string) string

func (f PluralizerFunc) Plural(word string) string { return f(word) }

// InflectionPluralizer uses English inflection rules.
type InflectionPluralizer struct{}

func (InflectionPluralizer) Plural(word string) string { return inflection.Plural(word) }

var (
	bareWordPattern   = regexp.MustCompile(`^[\w-]+$`)
	separatorsPattern = regexp.MustCompile(`[-_]+`)
)

// KeyInferrer derives translation keys from default values.
// It is safe for concurrent use.
type KeyInferrer struct {
	cfg        Config
	pluralizer Pluralizer
	logger     *slog.Logger
	keys       *cache.LRU[string, string]
}

// NewKeyInferrer creates a KeyInferrer. The default config produces
// underscored_crc32 keys of at most 50 slug characters.
func NewKeyInferrer(opts ...Option) *KeyInferrer {
	o := newOptions(opts)
	k := &KeyInferrer{cfg: o.cfg, pluralizer: o.pluralizer, logger: o.logger}
	if o.keyCache > 0 {
		k.keys = cache.New[string, string](o.keyCache)
	}
	return k
}

// Config returns the settings in use.
func (k *KeyInferrer) Config() Config { return k.cfg }

// CacheStats reports key cache counters; zero when caching is disabled.
func (k *KeyInferrer) CacheStats() cache.Stats {
	if k.keys == nil {
		return cache.Stats{}
	}
	return k.keys.Stats()
}

// InferKey derives a key from defaultValue. For a mapping default the text
// of its "other" category is used. When the text expands into a
// pluralization hash the key still comes from the bare text.
func (k *KeyInferrer) InferKey(defaultValue Value, translateOptions *Map) (string, error) {
	if !ValidDefault(defaultValue, k.cfg.AllowBlankDefault) {
		return "", fmt.Errorf("%w: got %s", ErrInvalidDefault, defaultValue.Kind())
	}

	var text string
	switch {
	case IsObject(defaultValue):
		text = defaultValue.Map().Get(PluralOther).Text()
	case defaultValue.IsString():
		text = defaultValue.Str()
	}

	if normalized := k.NormalizeDefault(String(text), translateOptions); normalized.IsString() {
		text = normalized.Str()
	}
	if text == "" {
		return "", ErrEmptyKey
	}
	return k.Keyify(text), nil
}

// NormalizeDefault prepares a default value for lookup fallbacks.
func (k *KeyInferrer) NormalizeDefault(defaultValue Value, translateOptions *Map) Value {
	return k.InferPluralizationHash(defaultValue, translateOptions)
}

// InferPluralizationHash expands a single bare word into a pluralization hash
// when translateOptions carries a truthy count:
//
//	"cat", {count: 3} → {one: "1 cat", other: "%{count} cats"}
//
// Any other value is returned unchanged.
func (k *KeyInferrer) InferPluralizationHash(defaultValue Value, translateOptions *Map) Value {
	if !defaultValue.IsString() || !bareWordPattern.MatchString(defaultValue.Str()) {
		return defaultValue
	}
	if !translateOptions.Get("count").Truthy() {
		return defaultValue
	}
	word := defaultValue.Str()
	hash := NewMap()
	hash.Set(PluralOne, String("1 "+word))
	hash.Set(PluralOther, String("%{count} "+k.pluralizer.Plural(word)))
	return MapValue(hash)
}

// Keyify turns text into a key according to the configured format.
// Unknown formats fall back to raw.
func (k *KeyInferrer) Keyify(text string) string {
	if k.keys != nil {
		return k.keys.GetOrCompute(text, k.keyify)
	}
	return k.keyify(text)
}

func (k *KeyInferrer) keyify(text string) string {
	switch k.cfg.InferredKeyFormat {
	case KeyFormatUnderscored:
		return k.keyifyUnderscored(text)
	case KeyFormatUnderscoredCRC32:
		return k.keyifyUnderscoredCRC32(text)
	case KeyFormatRaw:
		return text
	default:
		k.logger.Debug("unknown inferred key format, using raw", "format", string(k.cfg.InferredKeyFormat))
		return text
	}
}

func (k *KeyInferrer) keyifyUnderscored(text string) string {
	key := slug.Make(text, slug.Separator("_"), slug.NoLanguage())
	key = separatorsPattern.ReplaceAllString(key, "_")
	if runes := []rune(key); k.cfg.UnderscoredKeyLength > 0 && len(runes) > k.cfg.UnderscoredKeyLength {
		key = string(runes[:k.cfg.UnderscoredKeyLength])
	}
	return key
}

func (k *KeyInferrer) keyifyUnderscoredCRC32(text string) string {
	return k.keyifyUnderscored(text) + "_" + Checksum(text)
}

// Checksum returns the lowercase hex CRC-32 of "<length>:<text>", where
// length counts UTF-16 code units.
func Checksum(text string) string {
	n := len(utf16.Encode([]rune(text)))
	sum := crc32.ChecksumIEEE([]byte(strconv.Itoa(n) + ":" + text))
	return strconv.FormatUint(uint64(sum), 16)
}
