package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nliner/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("includes static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(logger.Component("cli")))
		log.Info("msg")
		assert.Equal(t, "cli", decode(t, buf)["component"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("locale")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				if v, ok := ctx.Value(ctxKey).(string); ok {
					return logger.Locale(v), true
				}
				return slog.Attr{}, false
			}),
		)
		ctx := context.WithValue(context.Background(), ctxKey, "fr")
		log.InfoContext(ctx, "translated")
		assert.Equal(t, "fr", decode(t, buf)["locale"])
	})

	t.Run("context value option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key struct{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("run_id", key{}))
		log.InfoContext(context.WithValue(context.Background(), key{}, "r1"), "msg")
		assert.Equal(t, "r1", decode(t, buf)["run_id"])
	})

	t.Run("extractors survive With and WithGroup", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key struct{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("run_id", key{}))
		log.With(logger.Component("wrap")).WithGroup("g").InfoContext(context.WithValue(context.Background(), key{}, "r2"), "msg")
		entry := decode(t, buf)
		assert.Equal(t, "wrap", entry["component"])
		assert.Equal(t, map[string]any{"run_id": "r2"}, entry["g"])
	})
}

func TestEnvironmentOptions(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithDevelopment("i18nliner"), logger.WithOutput(buf))
		log.Debug("msg")
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "service=i18nliner")
		assert.Contains(t, buf.String(), "env=development")
	})

	t.Run("production", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment("prod", "i18nliner"), logger.WithOutput(buf))
		log.Debug("dropped")
		assert.Empty(t, buf.String())
		log.Info("msg")
		entry := decode(t, buf)
		assert.Equal(t, "i18nliner", entry["service"])
		assert.Equal(t, logger.EnvProduction, entry["env"])
	})

	t.Run("empty service is ignored", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithDevelopment(""), logger.WithOutput(buf))
		log.Info("msg")
		assert.NotContains(t, decode(t, buf), "service")
	})
}

func TestParseFormat(t *testing.T) {
	f, err := logger.ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatText, f)

	_, err = logger.ParseFormat("xml")
	assert.Error(t, err)
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")
	assert.Equal(t, "default", decode(t, buf)["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestDiscard(t *testing.T) {
	assert.False(t, logger.Discard().Enabled(context.Background(), slog.LevelError))
}
