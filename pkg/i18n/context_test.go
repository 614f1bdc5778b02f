package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/i18nliner/pkg/i18n"
)

func TestLocaleContext(t *testing.T) {
	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(context.Background()))

	ctx := i18n.SetLocale(context.Background(), "de")
	assert.Equal(t, "de", i18n.GetLocale(ctx))

	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(i18n.SetLocale(context.Background(), "")))
}

func TestLocaleExtractor(t *testing.T) {
	_, ok := i18n.LocaleExtractor(context.Background())
	assert.False(t, ok)

	attr, ok := i18n.LocaleExtractor(i18n.SetLocale(context.Background(), "fr"))
	assert.True(t, ok)
	assert.Equal(t, "locale", attr.Key)
	assert.Equal(t, "fr", attr.Value.String())
}
