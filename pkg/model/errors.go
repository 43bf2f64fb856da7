package model

import (
	"errors"
	"net/http"
)

type ErrorCode int

const (
	ErrorCodeNoInput ErrorCode = iota
	ErrorCodeNoValidInput
	ErrorCodeModelUnavailable
	ErrorCodePredictorNotLoaded
	ErrorCodePredictionFailure
	ErrorCodeMalformedRequest
)

func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeNoInput:
		return "no_input"
	case ErrorCodeNoValidInput:
		return "no_valid_input"
	case ErrorCodeModelUnavailable:
		return "model_unavailable"
	case ErrorCodePredictorNotLoaded:
		return "predictor_not_loaded"
	case ErrorCodePredictionFailure:
		return "prediction_failure"
	case ErrorCodeMalformedRequest:
		return "malformed_request"
	default:
		return "unknown"
	}
}

// HTTPStatus is the status the predict endpoint answers with.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case ErrorCodeNoInput, ErrorCodeNoValidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Envelope "error" and "message" text per code. Input, prediction and
// request failures use the cause's text as "error" when there is one.
var errorTexts = map[ErrorCode][2]string{
	ErrorCodeNoInput:            {"No sequences provided", ""},
	ErrorCodeNoValidInput:       {"No valid sequences provided", "Sequences must contain only A, T, G, C characters"},
	ErrorCodeModelUnavailable:   {"Model files not found", "Please ensure all model files are in the Model directory"},
	ErrorCodePredictorNotLoaded: {"Model inference function not available", "Could not resolve the external predictor"},
	ErrorCodePredictionFailure:  {"Prediction failed", "Prediction failed"},
	ErrorCodeMalformedRequest:   {"Malformed request", "Internal server error"},
}

// PredictError is the tagged failure of a prediction request. Callers switch
// on Code; Trace is operator-facing diagnostic output and may be empty.
type PredictError struct {
	Code    ErrorCode
	Err     error
	Message string
	Trace   string
}

func NewPredictError(code ErrorCode, cause error) *PredictError {
	return &PredictError{
		Code:    code,
		Err:     cause,
		Message: errorTexts[code][1],
	}
}

func (e *PredictError) Error() string {
	switch e.Code {
	case ErrorCodeNoInput, ErrorCodePredictionFailure, ErrorCodeMalformedRequest:
		if e.Err != nil {
			return e.Err.Error()
		}
	}
	return errorTexts[e.Code][0]
}

func (e *PredictError) Unwrap() error {
	return e.Err
}

// AsPredictError extracts a *PredictError, wrapping anything else as a
// prediction failure.
func AsPredictError(err error) *PredictError {
	var perr *PredictError
	if errors.As(err, &perr) {
		return perr
	}
	return NewPredictError(ErrorCodePredictionFailure, err)
}
