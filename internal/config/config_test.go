package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "APP_ENV", "APP_PORT", "LOG_LEVEL", "MODEL_DIR",
		"PREDICTOR_CMD", "PREDICTOR_ARGS", "PREDICTOR_URL", "PREDICTOR_TIMEOUT",
		"PLACES_DB", "CORS_ALLOW_ORIGIN", "STATSD_ADDR", "METRIC_SAMPLING_RATE",
		"OCEAN_DEFAULT_DATE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "genepredict", cfg.AppName)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "./Model", cfg.ModelDir)
	assert.Equal(t, 60*time.Second, cfg.PredictorTimeout)
	assert.Empty(t, cfg.PredictorCmd)
	assert.Empty(t, cfg.PredictorArgs)
	assert.Empty(t, cfg.PredictorURL)
	assert.Empty(t, cfg.PlacesDB)
	assert.Equal(t, "*", cfg.CORSAllowOrigin)
	assert.Empty(t, cfg.StatsdAddr)
	assert.Equal(t, 1.0, cfg.MetricSamplingRate)
	assert.Equal(t, "2024-01-01", cfg.DefaultOceanDate)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "5000")
	t.Setenv("MODEL_DIR", "/srv/model")
	t.Setenv("PREDICTOR_CMD", "python3")
	t.Setenv("PREDICTOR_ARGS", "infer_helper.py  --stdin")
	t.Setenv("PREDICTOR_TIMEOUT", "15s")
	t.Setenv("METRIC_SAMPLING_RATE", "0.25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "/srv/model", cfg.ModelDir)
	assert.Equal(t, "python3", cfg.PredictorCmd)
	assert.Equal(t, []string{"infer_helper.py", "--stdin"}, cfg.PredictorArgs)
	assert.Equal(t, 15*time.Second, cfg.PredictorTimeout)
	assert.Equal(t, 0.25, cfg.MetricSamplingRate)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port out of range", "APP_PORT", "70000"},
		{"negative timeout", "PREDICTOR_TIMEOUT", "-1s"},
		{"sampling rate above one", "METRIC_SAMPLING_RATE", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MODEL_DIR=/from/dotenv\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("MODEL_DIR") })

	require.NoError(t, LoadDotenv(path))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/from/dotenv", cfg.ModelDir)

	assert.Error(t, LoadDotenv(filepath.Join(t.TempDir(), "missing.env")))
}
