package app

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "127.0.0.1:8050", cfg.AppAddr)
	assert.Equal(t, "data_input/promotion.csv", cfg.DataPath)
	assert.Equal(t, "HR", cfg.StaticDepartment)
	assert.Equal(t, 10*time.Second, cfg.AppRequestTimeout)
	assert.Less(t, cfg.AppRequestTimeout, cfg.AppWriteTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATA_PATH", "/srv/promotion.csv")
	t.Setenv("STATIC_DEPARTMENT", "Finance")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/srv/promotion.csv", cfg.DataPath)
	assert.Equal(t, "Finance", cfg.StaticDepartment)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"log format": {"LOG_FORMAT", "xml"},
		"timeout":    {"APP_READ_TIMEOUT", "soon"},
		"negative":   {"APP_REQUEST_TIMEOUT", "-1s"},
		"deadline":   {"APP_REQUEST_TIMEOUT", "15s"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestIsProductionNilSafe(t *testing.T) {
	var cfg *Config
	assert.False(t, cfg.IsProduction())
}

func TestNewLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&Config{LogFormat: "json", AppEnv: "production"}, &buf).Info("dataset loaded")
	assert.Contains(t, buf.String(), `"msg":"dataset loaded"`)

	buf.Reset()
	logger := newLogger(&Config{LogFormat: "pretty", AppEnv: "production"}, &buf)
	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger = newLogger(&Config{LogFormat: "pretty"}, &buf)
	logger.Debug("rows dropped")
	assert.Contains(t, buf.String(), "msg=\"rows dropped\"")
}

func TestTestModeFlag(t *testing.T) {
	t.Setenv(testModeEnv, "1")
	RefreshTestMode()
	assert.True(t, InTestMode())

	t.Setenv(testModeEnv, "")
	RefreshTestMode()
	assert.False(t, InTestMode())
}
