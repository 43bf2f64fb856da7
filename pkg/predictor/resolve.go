package predictor

import (
	"errors"
	"time"

	"github.com/yumyai/genepredict/logger"
	"go.uber.org/zap"
)

var ErrNotConfigured = errors.New("no predictor configured (set PREDICTOR_URL or PREDICTOR_CMD)")

type Options struct {
	Command  string
	Args     []string
	URL      string
	Timeout  time.Duration
	ModelDir string
}

// Resolve picks the predictor backend once, at process start. The URL backend
// wins when both are configured. On error the caller keeps running without a
// predictor; nothing retries the resolution later.
func Resolve(opts Options) (Predictor, error) {
	switch {
	case opts.URL != "":
		p, err := NewHTTPPredictor(opts.URL, opts.Timeout)
		if err != nil {
			return nil, err
		}
		logger.Info("Predictor resolved", zap.String("backend", backendHTTP), zap.String("endpoint", p.Endpoint()))
		return p, nil

	case opts.Command != "":
		p, err := NewCommandPredictor(opts.Command, opts.Args, opts.ModelDir)
		if err != nil {
			return nil, err
		}
		logger.Info("Predictor resolved",
			zap.String("backend", backendCommand),
			zap.String("path", p.Path()),
			zap.Strings("args", opts.Args),
		)
		return p, nil

	default:
		return nil, ErrNotConfigured
	}
}

// BackendName names the backend behind p for logs and metric tags.
func BackendName(p Predictor) string {
	switch p.(type) {
	case *HTTPPredictor:
		return backendHTTP
	case *CommandPredictor:
		return backendCommand
	case nil:
		return "none"
	default:
		return "custom"
	}
}
