package model

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodeHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
		name string
	}{
		{ErrorCodeNoInput, http.StatusBadRequest, "no_input"},
		{ErrorCodeNoValidInput, http.StatusBadRequest, "no_valid_input"},
		{ErrorCodeModelUnavailable, http.StatusInternalServerError, "model_unavailable"},
		{ErrorCodePredictorNotLoaded, http.StatusInternalServerError, "predictor_not_loaded"},
		{ErrorCodePredictionFailure, http.StatusInternalServerError, "prediction_failure"},
		{ErrorCodeMalformedRequest, http.StatusInternalServerError, "malformed_request"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.HTTPStatus(), tt.name)
		assert.Equal(t, tt.name, tt.code.String())
	}
	assert.Equal(t, "unknown", ErrorCode(99).String())
}

func TestPredictErrorText(t *testing.T) {
	cause := errors.New("unexpected EOF")

	// Cause text surfaces only for failures that carry one.
	assert.Equal(t, "unexpected EOF", NewPredictError(ErrorCodeMalformedRequest, cause).Error())
	assert.Equal(t, "Malformed request", NewPredictError(ErrorCodeMalformedRequest, nil).Error())
	assert.Equal(t, "Model files not found", NewPredictError(ErrorCodeModelUnavailable, cause).Error())
	assert.Equal(t, "No sequences provided", NewPredictError(ErrorCodeNoInput, nil).Error())
	assert.Equal(t, "No JSON data provided", NewPredictError(ErrorCodeNoInput, errors.New("No JSON data provided")).Error())
	assert.Equal(t, "Internal server error", NewPredictError(ErrorCodeMalformedRequest, cause).Message)
}

func TestAsPredictError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewPredictError(ErrorCodeNoValidInput, nil))
	assert.Equal(t, ErrorCodeNoValidInput, AsPredictError(wrapped).Code)

	plain := AsPredictError(errors.New("boom"))
	assert.Equal(t, ErrorCodePredictionFailure, plain.Code)
	assert.Equal(t, "boom", plain.Error())
}
