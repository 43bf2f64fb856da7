// Package predictor talks to the external species classifier. The classifier
// itself (tree ensembles, meta classifier, label encoder) is opaque; this
// package only moves sequences in and raw predictions out.
package predictor

import (
	"context"
	"fmt"
)

// RawPrediction is one entry of the classifier output. Both fields are
// optional; defaults are applied by the caller.
type RawPrediction struct {
	PredLabel  *string   `json:"pred_label,omitempty"`
	ProbVector []float64 `json:"prob_vector,omitempty"`
}

// Predictor classifies a batch of cleaned sequences (upper-case, ATGC only).
//
// Implementations must return exactly one prediction per input, in input
// order, and must be safe for concurrent use: every in-flight request calls
// Predict independently and no locking happens on the caller side.
type Predictor interface {
	Predict(ctx context.Context, sequences []string) ([]RawPrediction, error)
}

// BackendError is a failed predictor call. Diagnostic holds whatever the
// backend printed (stderr, response body) and is for operators only.
type BackendError struct {
	Backend    string
	Err        error
	Diagnostic string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s predictor: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

type predictRequest struct {
	Sequences []string `json:"sequences"`
}
