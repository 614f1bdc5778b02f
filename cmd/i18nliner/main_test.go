package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/i18nliner/pkg/callhelpers"
	"github.com/dmitrymomot/i18nliner/pkg/config"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default format", []string{"key", "Hello world"}, "hello_world_23c21974\n"},
		{"underscored", []string{"key", "Hello World!", "--format", "underscored"}, "hello_world\n"},
		{"raw", []string{"key", "Hello world", "--format", "raw"}, "Hello world\n"},
		{"length limit", []string{"key", "Hello world", "--format", "underscored", "--length", "5"}, "hello\n"},
		{"explicit key", []string{"key", "greeting.hello"}, "greeting.hello\n"},
		{"count keeps key from text", []string{"key", "cat", "--count", "3"}, "cat_de2ab734\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestKeyCommand_EnvConfig(t *testing.T) {
	t.Setenv("I18NLINER_INFERRED_KEY_FORMAT", "underscored")
	t.Setenv("I18NLINER_UNDERSCORED_KEY_LENGTH", "4")

	out, _, err := run(t, "key", "Hello world")
	require.NoError(t, err)
	assert.Equal(t, "hell\n", out)
}

func TestKeyCommand_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "i18n.env")
	require.NoError(t, os.WriteFile(path, []byte("I18NLINER_INFERRED_KEY_FORMAT=raw\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("I18NLINER_INFERRED_KEY_FORMAT") })

	out, _, err := run(t, "--env-file", path, "key", "Hello world")
	require.NoError(t, err)
	assert.Equal(t, "Hello world\n", out)
}

func TestKeyCommand_Structured(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		out, _, err := run(t, "key", "cat", "--count", "3", "-o", "json")
		require.NoError(t, err)

		var res keyResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, "cat_de2ab734", res.Key)
		assert.True(t, res.Inferred)
		assert.Equal(t, map[string]any{"count": float64(3), "defaultValue": "cat"}, res.Options)
	})

	t.Run("yaml", func(t *testing.T) {
		out, _, err := run(t, "key", "greeting.hello", "-o", "yaml")
		require.NoError(t, err)

		var res keyResult
		require.NoError(t, yaml.Unmarshal([]byte(out), &res))
		assert.Equal(t, "greeting.hello", res.Key)
		assert.False(t, res.Inferred)
	})

	t.Run("unknown output", func(t *testing.T) {
		_, _, err := run(t, "key", "x", "-o", "xml")
		assert.Error(t, err)
	})
}

func TestKeyCommand_Errors(t *testing.T) {
	_, _, err := run(t, "key", "")
	assert.ErrorIs(t, err, callhelpers.ErrEmptyKey)

	_, _, err = run(t, "key", "x", "--format", "camel")
	assert.ErrorIs(t, err, callhelpers.ErrUnknownKeyFormat)

	_, _, err = run(t, "key")
	assert.Error(t, err)
}

func TestWrapCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"single template", []string{"wrap", "Click *here*", "<a>$1</a>"}, "Click <a>here</a>\n"},
		{"positional depth", []string{"wrap", "**Save** or *cancel*", "<i>$1</i>", "<b>$1</b>"}, "<b>Save</b> or <i>cancel</i>\n"},
		{"named", []string{"wrap", "Read _the terms_", "--named", "_=<u>$1</u>"}, "Read <u>the terms</u>\n"},
		{"first span only", []string{"wrap", "*a* *b*", "[$1]"}, "[a] *b*\n"},
		{"all spans", []string{"wrap", "*a* *b*", "[$1]", "--all"}, "[a] [b]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	t.Run("requires a wrapper", func(t *testing.T) {
		_, _, err := run(t, "wrap", "*a*")
		assert.ErrorIs(t, err, errNoWrappers)
	})

	t.Run("rejects mixed wrappers", func(t *testing.T) {
		_, _, err := run(t, "wrap", "*a*", "[$1]", "--named", "*=<b>$1</b>")
		assert.Error(t, err)
	})
}

func TestTranslateCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de.yaml"), []byte(`
de:
  hello_world_23c21974: Hallo Welt
  greeting:
    hi: "Hallo %{name}"
  cat_de2ab734:
    one: 1 Katze
    other: "%{count} Katzen"
`), 0o600))
	file := filepath.Join(t.TempDir(), "fr.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"fr": {"hello_world_23c21974": "Bonjour le monde"}}`), 0o600))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"directory catalog", []string{"translate", "Hello world", "-c", dir, "-l", "de"}, "Hallo Welt\n"},
		{"file catalog", []string{"translate", "Hello world", "-c", file, "-l", "fr"}, "Bonjour le monde\n"},
		{"regional locale", []string{"translate", "Hello world", "-c", dir, "-l", "de-CH"}, "Hallo Welt\n"},
		{"missing falls back to text", []string{"translate", "Hello world", "-c", dir, "-l", "en"}, "Hello world\n"},
		{"explicit key with vars", []string{"translate", "Hi %{name}", "--key", "greeting.hi", "--var", "name=Ann", "-c", dir, "-l", "de"}, "Hallo Ann\n"},
		{"catalog plural", []string{"translate", "cat", "--count", "2", "-c", dir, "-l", "de"}, "2 Katzen\n"},
		{"inferred plural", []string{"translate", "cat", "--count", "2"}, "2 cats\n"},
		{"wrapper", []string{"translate", "Click *here*", "-w", "<a>$1</a>"}, "Click <a>here</a>\n"},
		{"wrapper depth", []string{"translate", "**a** *b*", "-w", "<i>$1</i>", "-w", "<b>$1</b>"}, "<b>a</b> <i>b</i>\n"},
		{"html escaping", []string{"translate", "Tom & *%{who}*", "--var", "who=<me>", "-w", "<b>$1</b>", "--html"}, "Tom &amp; <b>&lt;me&gt;</b>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	t.Run("locale from env", func(t *testing.T) {
		t.Setenv("I18NLINER_LOCALE", "de")
		t.Setenv("I18NLINER_CATALOG", dir)
		out, _, err := run(t, "translate", "Hello world")
		require.NoError(t, err)
		assert.Equal(t, "Hallo Welt\n", out)
	})

	t.Run("strict missing key", func(t *testing.T) {
		_, _, err := run(t, "translate", "nav.home", "--strict")
		assert.Error(t, err)
	})

	t.Run("missing catalog", func(t *testing.T) {
		_, _, err := run(t, "translate", "x", "-c", filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("missing translations are logged", func(t *testing.T) {
		_, stderr, err := run(t, "--log-format", "json", "translate", "Hello world", "-c", dir, "-l", "it")
		require.NoError(t, err)
		assert.Contains(t, stderr, `"msg":"translation missing"`)
		assert.Contains(t, stderr, `"locale":"it"`)
	})
}

func TestRootCommand(t *testing.T) {
	t.Run("verbose logs configuration", func(t *testing.T) {
		_, stderr, err := run(t, "-v", "key", "Hello world")
		require.NoError(t, err)
		assert.Contains(t, stderr, "configuration loaded")
		assert.Contains(t, stderr, "key_format=underscored_crc32")
	})

	t.Run("underscored flag names", func(t *testing.T) {
		_, stderr, err := run(t, "-v", "--log_format", "json", "key", "Hello world")
		require.NoError(t, err)
		assert.Contains(t, stderr, `"msg":"configuration loaded"`)
	})

	t.Run("invalid log format", func(t *testing.T) {
		_, _, err := run(t, "--log-format", "xml", "key", "x")
		assert.Error(t, err)
	})

	t.Run("invalid config", func(t *testing.T) {
		t.Setenv("I18NLINER_UNDERSCORED_KEY_LENGTH", "-1")
		_, _, err := run(t, "key", "x")
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("version", func(t *testing.T) {
		out, _, err := run(t, "version")
		require.NoError(t, err)
		assert.Contains(t, out, "i18nliner version dev")
	})
}
