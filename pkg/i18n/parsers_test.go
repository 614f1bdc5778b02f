package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nliner/pkg/i18n"
)

const yamlCatalog = `
en:
  greeting:
    hello: "Hello %{name}"
  hello_world_23c21974: Hello world
  items:
    one: 1 item
    other: "%{count} items"
`

const jsonCatalog = `{
  "de": {"hello_world_23c21974": "Hallo Welt", "greeting": {"hello": "Hallo %{name}"}},
  "version": 2
}`

func TestYAMLParser(t *testing.T) {
	p := i18n.NewYAMLParser()

	t.Run("parses nested trees", func(t *testing.T) {
		out, err := p.Parse(context.Background(), []byte(yamlCatalog))
		require.NoError(t, err)
		require.Contains(t, out, "en")
		assert.Equal(t, "Hello world", out["en"]["hello_world_23c21974"])
		assert.Equal(t, map[string]any{"hello": "Hello %{name}"}, out["en"]["greeting"])
	})

	t.Run("locale must map to a tree", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte("en: hello\n"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("malformed content", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte("en: [unclosed\n"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte("# nothing\n"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, []byte(yamlCatalog))
		assert.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("extensions", func(t *testing.T) {
		assert.True(t, p.SupportsFileExtension("yaml"))
		assert.True(t, p.SupportsFileExtension(".YML"))
		assert.False(t, p.SupportsFileExtension("json"))
	})
}

func TestJSONParser(t *testing.T) {
	p := i18n.NewJSONParser()

	t.Run("skips non-object locales", func(t *testing.T) {
		out, err := p.Parse(context.Background(), []byte(jsonCatalog))
		require.NoError(t, err)
		assert.Len(t, out, 1)
		assert.Equal(t, "Hallo Welt", out["de"]["hello_world_23c21974"])
	})

	t.Run("malformed content", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte(`{"de": `))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, []byte(jsonCatalog))
		assert.ErrorIs(t, err, i18n.ErrJSONParsingCancelled)
	})

	t.Run("extensions", func(t *testing.T) {
		assert.True(t, p.SupportsFileExtension(".json"))
		assert.False(t, p.SupportsFileExtension("yaml"))
	})
}

func TestNewParserForFile(t *testing.T) {
	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("locales/de.JSON"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("en.yml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("en.yaml"))
	assert.Nil(t, i18n.NewParserForFile("en.toml"))
	assert.Nil(t, i18n.NewParserForFile("README"))
}

func TestMultiParser(t *testing.T) {
	p := i18n.DefaultParsers()
	ctx := context.Background()

	assert.True(t, p.SupportsFileExtension("yml"))
	assert.True(t, p.SupportsFileExtension("json"))
	assert.False(t, p.SupportsFileExtension("po"))

	out, err := p.ParseFile(ctx, "de.json", []byte(jsonCatalog))
	require.NoError(t, err)
	assert.Contains(t, out, "de")

	_, err = p.ParseFile(ctx, "de.po", []byte(jsonCatalog))
	assert.ErrorIs(t, err, i18n.ErrUnsupportedFileType)

	out, err = p.Parse(ctx, []byte(yamlCatalog))
	require.NoError(t, err)
	assert.Contains(t, out, "en")

	_, err = i18n.MultiParser{}.Parse(ctx, []byte(yamlCatalog))
	assert.ErrorIs(t, err, i18n.ErrUnsupportedFileType)
}
