package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func env(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))

	require.NoError(t, err)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultResponseDelay, cfg.ResponseDelay)
	assert.Equal(t, DefaultUploadDelay, cfg.UploadDelay)
	assert.Empty(t, cfg.FixturesPath)
	assert.Equal(t, zapcore.WarnLevel, cfg.LogLevel)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		EnvAddr:          "127.0.0.1:9000",
		EnvResponseDelay: "250ms",
		EnvUploadDelay:   "0s",
		EnvFixtures:      "/tmp/fixtures.yaml",
		EnvLogLevel:      "debug",
	}))

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.ResponseDelay)
	assert.Zero(t, cfg.UploadDelay)
	assert.Equal(t, "/tmp/fixtures.yaml", cfg.FixturesPath)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad response delay", map[string]string{EnvResponseDelay: "soon"}},
		{"negative upload delay", map[string]string{EnvUploadDelay: "-1s"}},
		{"bad log level", map[string]string{EnvLogLevel: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(env(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestConfig_NewLogger(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)

	logger, err := cfg.NewLogger(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = cfg.NewLogger(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestConfig_NewLoggerToFile(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "agenthub.log")
	logger, err := cfg.NewLogger(true, path)
	require.NoError(t, err)

	logger.Debug("written to file")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}
