package callhelpers

import (
	"errors"
	"fmt"
)

// KeyFormat selects how inferred keys are derived from default text.
type KeyFormat string

const (
	// KeyFormatRaw uses the default text as the key.
	KeyFormatRaw KeyFormat = "raw"
	// KeyFormatUnderscored slugifies the text with "_" and truncates it.
	KeyFormatUnderscored KeyFormat = "underscored"
	// KeyFormatUnderscoredCRC32 appends a CRC-32 checksum to the underscored key.
	KeyFormatUnderscoredCRC32 KeyFormat = "underscored_crc32"
)

const (
	DefaultKeyFormat            = KeyFormatUnderscoredCRC32
	DefaultUnderscoredKeyLength = 50
)

// ParseKeyFormat converts a format name. Unknown names return
// ErrUnknownKeyFormat together with KeyFormatRaw, the runtime fallback.
func ParseKeyFormat(s string) (KeyFormat, error) {
	switch f := KeyFormat(s); f {
	case KeyFormatRaw, KeyFormatUnderscored, KeyFormatUnderscoredCRC32:
		return f, nil
	default:
		return KeyFormatRaw, fmt.Errorf("%w: %q", ErrUnknownKeyFormat, s)
	}
}

// Config holds the key inference settings. It is read-only once handed to
// a KeyInferrer or Normalizer.
type Config struct {
	InferredKeyFormat    KeyFormat `env:"I18NLINER_INFERRED_KEY_FORMAT" envDefault:"underscored_crc32"`
	UnderscoredKeyLength int       `env:"I18NLINER_UNDERSCORED_KEY_LENGTH" envDefault:"50"`
	// AllowBlankDefault lets key inference accept an absent default value.
	AllowBlankDefault bool `env:"I18NLINER_ALLOW_BLANK_DEFAULT" envDefault:"true"`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		InferredKeyFormat:    DefaultKeyFormat,
		UnderscoredKeyLength: DefaultUnderscoredKeyLength,
		AllowBlankDefault:    true,
	}
}

// Validate checks settings that cannot fall back silently.
// An unknown key format is not an error here: keyify treats it as raw.
func (c Config) Validate() error {
	if c.UnderscoredKeyLength <= 0 {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("underscored key length must be positive, got %d", c.UnderscoredKeyLength))
	}
	return nil
}
