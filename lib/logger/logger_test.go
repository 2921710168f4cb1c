package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewFileLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "debug"
	cfg.FileName = filepath.Join(t.TempDir(), "cslim.log")

	log, err := New(cfg)
	require.NoError(t, err)
	log.Debug("token", zap.String("text", "break"))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(cfg.FileName)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"text":"break"`), string(data))
	assert.True(t, strings.Contains(string(data), `"level":"DEBUG"`), string(data))
}

func TestNewLevel(t *testing.T) {
	log, err := New(&Config{Level: "ERROR"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, log.Core().Enabled(zapcore.ErrorLevel))

	log, err = New(nil)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))

	_, err = New(&Config{Level: "loud"})
	assert.Error(t, err)
}
