// Process configuration, read once at startup and passed down read-only.

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultAppName          = "genepredict"
	defaultPort             = 8080
	defaultLogLevel         = "info"
	defaultModelDir         = "./Model"
	defaultPredictorTimeout = 60 * time.Second
	defaultCORSAllowOrigin  = "*"
	defaultSamplingRate     = 1.0
	defaultOceanDate        = "2024-01-01"
)

type Config struct {
	AppName  string
	AppEnv   string
	Port     int
	LogLevel string

	// Directory holding the serialized classifier artifacts.
	ModelDir string

	// External predictor. PredictorURL wins when both are set.
	PredictorCmd     string
	PredictorArgs    []string
	PredictorURL     string
	PredictorTimeout time.Duration

	// Empty means an in-memory gazetteer.
	PlacesDB string

	CORSAllowOrigin string

	// Empty disables metrics.
	StatsdAddr         string
	MetricSamplingRate float64

	DefaultOceanDate string
}

// LoadDotenv loads .env into the process environment. A missing file is
// reported to the caller, who decides whether that matters.
func LoadDotenv(files ...string) error {
	return godotenv.Load(files...)
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", defaultAppName)
	v.SetDefault("APP_ENV", "")
	v.SetDefault("APP_PORT", defaultPort)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("MODEL_DIR", defaultModelDir)
	v.SetDefault("PREDICTOR_CMD", "")
	v.SetDefault("PREDICTOR_ARGS", "")
	v.SetDefault("PREDICTOR_URL", "")
	v.SetDefault("PREDICTOR_TIMEOUT", defaultPredictorTimeout)
	v.SetDefault("PLACES_DB", "")
	v.SetDefault("CORS_ALLOW_ORIGIN", defaultCORSAllowOrigin)
	v.SetDefault("STATSD_ADDR", "")
	v.SetDefault("METRIC_SAMPLING_RATE", defaultSamplingRate)
	v.SetDefault("OCEAN_DEFAULT_DATE", defaultOceanDate)

	port := v.GetInt("APP_PORT")
	if port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid APP_PORT: %q", v.GetString("APP_PORT"))
	}

	timeout := v.GetDuration("PREDICTOR_TIMEOUT")
	if timeout <= 0 {
		return Config{}, fmt.Errorf("invalid PREDICTOR_TIMEOUT: %q", v.GetString("PREDICTOR_TIMEOUT"))
	}

	rate := v.GetFloat64("METRIC_SAMPLING_RATE")
	if rate < 0 || rate > 1 {
		return Config{}, fmt.Errorf("invalid METRIC_SAMPLING_RATE: %q", v.GetString("METRIC_SAMPLING_RATE"))
	}

	modelDir := strings.TrimSpace(v.GetString("MODEL_DIR"))
	if modelDir == "" {
		modelDir = defaultModelDir
	}

	return Config{
		AppName:            strings.TrimSpace(v.GetString("APP_NAME")),
		AppEnv:             strings.TrimSpace(v.GetString("APP_ENV")),
		Port:               port,
		LogLevel:           strings.TrimSpace(v.GetString("LOG_LEVEL")),
		ModelDir:           modelDir,
		PredictorCmd:       strings.TrimSpace(v.GetString("PREDICTOR_CMD")),
		PredictorArgs:      strings.Fields(v.GetString("PREDICTOR_ARGS")),
		PredictorURL:       strings.TrimSpace(v.GetString("PREDICTOR_URL")),
		PredictorTimeout:   timeout,
		PlacesDB:           strings.TrimSpace(v.GetString("PLACES_DB")),
		CORSAllowOrigin:    strings.TrimSpace(v.GetString("CORS_ALLOW_ORIGIN")),
		StatsdAddr:         strings.TrimSpace(v.GetString("STATSD_ADDR")),
		MetricSamplingRate: rate,
		DefaultOceanDate:   strings.TrimSpace(v.GetString("OCEAN_DEFAULT_DATE")),
	}, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}
