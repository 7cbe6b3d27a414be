package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"campus-admin/backend/config"
)

func TestNewLogger_Levels(t *testing.T) {
	l, err := NewLogger(&config.LogConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)

	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestNewLogger_Console(t *testing.T) {
	l, err := NewLogger(&config.LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(&config.LogConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)
}

func TestNewLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, err := NewLogger(&config.LogConfig{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)
	l.Info("宿舍已创建", zap.String("resource", "dormitorys"))
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "宿舍已创建", entry["msg"])
	assert.Equal(t, "campus-admin", entry["service"])
	assert.Equal(t, "dormitorys", entry["resource"])
	assert.Contains(t, entry, "time")
}

func TestSplitOutputs(t *testing.T) {
	assert.Equal(t, []string{"stdout", "/tmp/a.log"}, splitOutputs(" stdout, /tmp/a.log ,"))
	assert.Nil(t, splitOutputs(""))
}
