package metric

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/yumyai/genepredict/logger"
	"go.uber.org/zap"
)

const (
	ApiRequestCount        = "api_request_count"
	ApiRequestLatency      = "api_request_latency"
	PredictorCallCount     = "predictor_call_count"
	PredictorCallLatency   = "predictor_call_latency"
	PredictedSequenceCount = "predicted_sequence_count"
	PredictionFailureCount = "prediction_failure_count"

	TagEnv     = "env"
	TagService = "service"
	TagPath    = "path"
	TagMethod  = "method"
	TagStatus  = "status"
	TagBackend = "backend"
	TagOutcome = "outcome"
	TagCode    = "code"
)

var (
	// safe to share between goroutines
	statsDClient statsd.ClientInterface = &statsd.NoOpClient{}
	samplingRate                        = 1.0
	once                                sync.Once
)

// Init points the package at a statsd agent. An empty address keeps the
// no-op client.
func Init(addr, service, env string, rate float64) {
	once.Do(func() {
		samplingRate = rate
		if addr == "" {
			logger.Info("Metrics disabled (STATSD_ADDR not set)")
			return
		}

		client, err := statsd.New(addr, statsd.WithTags([]string{
			TagAsString(TagEnv, env),
			TagAsString(TagService, service),
		}))
		if err != nil {
			logger.Warn("StatsD client initialization failed, metrics disabled", zap.Error(err))
			return
		}
		statsDClient = client
		logger.Info("Metrics client initialized",
			zap.String("statsd_addr", addr),
			zap.Float64("sampling_rate", samplingRate),
		)
	})
}

// SetClient swaps the client and returns the previous one.
func SetClient(c statsd.ClientInterface) statsd.ClientInterface {
	prev := statsDClient
	statsDClient = c
	return prev
}

// Close flushes and closes the client.
func Close() error {
	return statsDClient.Close()
}

// Timing sends timing information
func Timing(name string, value time.Duration, tags []string) {
	if err := statsDClient.Timing(name, value, tags, samplingRate); err != nil {
		logger.Debug("statsd timing failed", zap.String("metric", name), zap.Error(err))
	}
}

// TimingWithStart is meant for `defer metric.TimingWithStart(name, time.Now(), tags)`.
func TimingWithStart(name string, start time.Time, tags []string) {
	Timing(name, time.Since(start), tags)
}

// Count increases metric counter by value
func Count(name string, value int64, tags []string) {
	if err := statsDClient.Count(name, value, tags, samplingRate); err != nil {
		logger.Debug("statsd count failed", zap.String("metric", name), zap.Error(err))
	}
}

// Incr increases metric counter by 1
func Incr(name string, tags []string) {
	Count(name, 1, tags)
}

func TagAsString(key string, value any) string {
	return fmt.Sprintf("%s:%v", key, value)
}

// BuildTag flattens key/value pairs into statsd tags.
func BuildTag(pairs ...string) []string {
	tags := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		tags = append(tags, TagAsString(pairs[i], pairs[i+1]))
	}
	return tags
}
