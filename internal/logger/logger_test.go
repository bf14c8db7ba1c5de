package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewZapLoggerWritesJSONAtLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.log")

	log := NewZapLogger(&ZapLoggerConfig{
		Encoding:    "json",
		Level:       "warn",
		OutputPaths: []string{path},
	})
	log.Info("dropped")
	log.With(zap.String("session_id", "abc")).Warn("kept", zap.Int64("category_id", 7))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), `"msg":"kept"`)
	assert.Contains(t, string(data), `"session_id":"abc"`)
	assert.Contains(t, string(data), `"category_id":7`)
}

func TestNewZapLoggerFallsBackToInfoOnBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.log")

	log := NewZapLogger(&ZapLoggerConfig{
		Encoding:    "json",
		Level:       "chatty",
		OutputPaths: []string{path},
	})
	log.Debug("hidden")
	log.Info("shown")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNewWrapsCore(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	log := New(zap.New(core))
	log.Error("boom", zap.String("op", "delete"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "boom", entry.Message)
	assert.Equal(t, "delete", entry.ContextMap()["op"])
}
