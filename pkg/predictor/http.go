package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	backendHTTP = "http"

	// Cap on the error body kept as diagnostic.
	maxDiagnosticBytes = 64 << 10
)

// HTTPPredictor posts batches to an inference sidecar.
type HTTPPredictor struct {
	endpoint string
	client   *http.Client
}

func NewHTTPPredictor(endpoint string, timeout time.Duration) (*HTTPPredictor, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse predictor url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("predictor url must be absolute http(s), got %q", endpoint)
	}

	return &HTTPPredictor{
		endpoint: u.String(),
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (c *HTTPPredictor) Endpoint() string {
	return c.endpoint
}

func (c *HTTPPredictor) Predict(ctx context.Context, sequences []string) ([]RawPrediction, error) {
	body, err := json.Marshal(predictRequest{Sequences: sequences})
	if err != nil {
		return nil, &BackendError{Backend: backendHTTP, Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &BackendError{Backend: backendHTTP, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &BackendError{Backend: backendHTTP, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		diag, _ := io.ReadAll(io.LimitReader(resp.Body, maxDiagnosticBytes))
		return nil, &BackendError{
			Backend:    backendHTTP,
			Err:        fmt.Errorf("unexpected status code: %d", resp.StatusCode),
			Diagnostic: string(diag),
		}
	}

	var predictions []RawPrediction
	if err := json.NewDecoder(resp.Body).Decode(&predictions); err != nil {
		return nil, &BackendError{Backend: backendHTTP, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return predictions, nil
}
