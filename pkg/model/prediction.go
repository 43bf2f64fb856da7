package model

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime/debug"
	"time"

	"github.com/yumyai/genepredict/logger"
	ggdb "github.com/yumyai/genepredict/pkg/db"
	"github.com/yumyai/genepredict/pkg/metric"
	"github.com/yumyai/genepredict/pkg/predictor"
	"go.uber.org/zap"
)

type PredictionRecord struct {
	SequenceID              string    `json:"sequence_id"`
	SequenceLength          int       `json:"sequence_length"`
	PredictedSpecies        string    `json:"predicted_species"`
	Confidence              float64   `json:"confidence"`
	ProbabilityDistribution []float64 `json:"probability_distribution"`
	SequencePreview         string    `json:"sequence_preview"`
}

type PredictResult struct {
	Predictions    []PredictionRecord `json:"predictions"`
	ModelInfo      ModelInfo          `json:"model_info"`
	TotalSequences int                `json:"total_sequences"`
}

// PredictionService validates sequences, checks the model artifacts and hands
// the batch to the external predictor. It is built once at startup and only
// read afterwards, so one instance serves all requests concurrently.
type PredictionService struct {
	artifacts *ggdb.ArtifactStore
	predictor predictor.Predictor
	backend   string
	// Why predictor is nil, kept for the logs.
	predictorErr error
	info         ModelInfo
}

// NewPredictionService takes the outcome of predictor resolution as is: a nil
// predictor means every Predict call fails with ErrorCodePredictorNotLoaded.
func NewPredictionService(artifacts *ggdb.ArtifactStore, p predictor.Predictor, resolveErr error) *PredictionService {
	if p == nil && resolveErr == nil {
		resolveErr = predictor.ErrNotConfigured
	}
	return &PredictionService{
		artifacts:    artifacts,
		predictor:    p,
		backend:      predictor.BackendName(p),
		predictorErr: resolveErr,
		info:         MODEL_INFO.Copy(),
	}
}

// Available checks the artifacts on disk. Not cached.
func (s *PredictionService) Available() bool {
	return s.artifacts.Available()
}

func (s *PredictionService) RequiredFiles() []string {
	return s.artifacts.RequiredFiles()
}

func (s *PredictionService) ModelInfo() ModelInfo {
	return s.info.Copy()
}

// Predict runs the full pipeline. Checks short-circuit in this order:
// artifacts, predictor, at least one valid sequence. The predictor is called
// once with the whole batch. Any returned error is a *PredictError.
func (s *PredictionService) Predict(ctx context.Context, raw []string) (*PredictResult, error) {

	result, err := s.predict(ctx, raw)
	if err != nil {
		perr := AsPredictError(err)
		metric.Incr(metric.PredictionFailureCount, metric.BuildTag(metric.TagCode, perr.Code.String()))
		return nil, perr
	}
	return result, nil
}

func (s *PredictionService) predict(ctx context.Context, raw []string) (*PredictResult, error) {

	if !s.Available() {
		logger.Warn("Prediction refused: model artifacts missing",
			zap.String("model_dir", s.artifacts.Dir),
			zap.Strings("missing", s.artifacts.Missing()),
		)
		return nil, NewPredictError(ErrorCodeModelUnavailable, nil)
	}

	if s.predictor == nil {
		logger.Error("Prediction refused: predictor was not loaded at startup", zap.Error(s.predictorErr))
		return nil, NewPredictError(ErrorCodePredictorNotLoaded, s.predictorErr)
	}

	valid, err := ValidateAndClean(raw)
	if err != nil {
		logger.Debug("Rejected input", zap.Int("received", len(raw)), zap.Error(err))
		return nil, err
	}

	raws, err := s.invoke(ctx, valid)
	if err != nil {
		return nil, err
	}

	if len(raws) != len(valid) {
		return nil, NewPredictError(ErrorCodePredictionFailure,
			fmt.Errorf("predictor returned %d predictions for %d sequences", len(raws), len(valid)))
	}

	records := make([]PredictionRecord, 0, len(valid))
	for i, seq := range valid {
		record, err := toRecord(i, seq, raws[i])
		if err != nil {
			return nil, NewPredictError(ErrorCodePredictionFailure, err)
		}
		records = append(records, record)
	}

	metric.Count(metric.PredictedSequenceCount, int64(len(records)), nil)
	logger.Debug("Prediction completed", zap.Int("received", len(raw)), zap.Int("predicted", len(records)))

	return &PredictResult{
		Predictions:    records,
		ModelInfo:      s.ModelInfo(),
		TotalSequences: len(records),
	}, nil
}

// invoke calls the predictor and turns errors and panics into
// ErrorCodePredictionFailure with whatever diagnostic is available.
func (s *PredictionService) invoke(ctx context.Context, valid []string) (preds []predictor.RawPrediction, err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			preds = nil
			err = &PredictError{
				Code:    ErrorCodePredictionFailure,
				Err:     fmt.Errorf("predictor panicked: %v", r),
				Message: errorTexts[ErrorCodePredictionFailure][1],
				Trace:   string(debug.Stack()),
			}
		}

		outcome := "success"
		if err != nil {
			outcome = "failure"
			logger.Error("Predictor call failed",
				zap.String("backend", s.backend),
				zap.Int("sequences", len(valid)),
				zap.Error(err),
			)
		}
		tags := metric.BuildTag(metric.TagBackend, s.backend, metric.TagOutcome, outcome)
		metric.Incr(metric.PredictorCallCount, tags)
		metric.TimingWithStart(metric.PredictorCallLatency, start, tags)
	}()

	preds, err = s.predictor.Predict(ctx, valid)
	if err != nil {
		perr := NewPredictError(ErrorCodePredictionFailure, err)
		var backendErr *predictor.BackendError
		if errors.As(err, &backendErr) {
			perr.Trace = backendErr.Diagnostic
		}
		return nil, perr
	}
	return preds, nil
}

// toRecord applies the documented defaults to one raw prediction: missing
// label is UNKNOWN_LABEL, missing probability vector is [0.0]. A vector that
// is present but empty has no maximum and fails the batch.
func toRecord(i int, seq string, raw predictor.RawPrediction) (PredictionRecord, error) {

	label := UNKNOWN_LABEL
	if raw.PredLabel != nil {
		label = *raw.PredLabel
	}

	probs := raw.ProbVector
	switch {
	case probs == nil:
		probs = []float64{0.0}
	case len(probs) == 0:
		return PredictionRecord{}, fmt.Errorf("predictor returned an empty probability vector for sequence %d", i+1)
	}

	confidence := math.Inf(-1)
	for _, p := range probs {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return PredictionRecord{}, fmt.Errorf("predictor returned non-finite probability for sequence %d", i+1)
		}
		confidence = math.Max(confidence, p)
	}

	return PredictionRecord{
		SequenceID:              fmt.Sprintf("seq_%d", i+1),
		SequenceLength:          len(seq),
		PredictedSpecies:        label,
		Confidence:              confidence,
		ProbabilityDistribution: probs,
		SequencePreview:         sequencePreview(seq),
	}, nil
}
