package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/i18nliner/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()
	supported := []string{"en", "fr", "de"}

	tests := []struct {
		name        string
		header      string
		supported   []string
		defaultLang string
		expected    string
	}{
		{"empty header returns default", "", supported, "en", "en"},
		{"no supported languages", "fr", nil, "en", "en"},
		{"exact match", "fr", supported, "en", "fr"},
		{"case insensitive", "FR", supported, "en", "fr"},
		{"region variant matches base language", "fr-CA", supported, "en", "fr"},
		{"quality values respected", "en;q=0.5,fr;q=0.9,de;q=0.8", supported, "en", "fr"},
		{"unsupported language falls back to default", "ja,ko", supported, "de", "de"},
		{"malformed header falls back to default", "en;q=abc;;", supported, "de", "de"},
		{"returns supported entry as given", "pt-BR", []string{"en", "pt-BR"}, "en", "pt-BR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, i18n.ParseAcceptLanguage(tt.header, tt.supported, tt.defaultLang))
		})
	}
}

func TestParseAcceptLanguage_OversizedHeader(t *testing.T) {
	header := "de," + strings.Repeat("x", 5000)
	assert.NotPanics(t, func() {
		i18n.ParseAcceptLanguage(header, []string{"en", "de"}, "en")
	})
}

func TestMatchLanguage(t *testing.T) {
	lang, ok := i18n.MatchLanguage("de-AT", []string{"en", "de"})
	assert.True(t, ok)
	assert.Equal(t, "de", lang)

	_, ok = i18n.MatchLanguage("ja", []string{"en", "de"})
	assert.False(t, ok)

	_, ok = i18n.MatchLanguage("not a tag!", []string{"en"})
	assert.False(t, ok)

	_, ok = i18n.MatchLanguage("en", nil)
	assert.False(t, ok)
}
