package types

import "github.com/yumyai/genepredict/pkg/model"

// Failure envelope shared by every endpoint that reports success.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	Traceback string `json:"traceback,omitempty"`
}

type PredictResponse struct {
	Success bool `json:"success"`
	*model.PredictResult
}

type HealthResponse struct {
	Status         string          `json:"status"`
	ModelAvailable bool            `json:"model_available"`
	ModelInfo      model.ModelInfo `json:"model_info"`
}

type ModelInfoResponse struct {
	ModelInfo      model.ModelInfo `json:"model_info"`
	ModelAvailable bool            `json:"model_available"`
	RequiredFiles  []string        `json:"required_files"`
}

type PopularPlacesResponse struct {
	Success bool                 `json:"success"`
	Places  []model.PopularPlace `json:"places"`
}

type GeocodeResponse struct {
	Success bool `json:"success"`
	*model.Place
}

// The ocean endpoint has no success flag, only error and message.
type OceanErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewErrorResponse builds the failure envelope for a tagged prediction error.
func NewErrorResponse(err *model.PredictError) ErrorResponse {
	return ErrorResponse{
		Success:   false,
		Error:     err.Error(),
		Message:   err.Message,
		Traceback: err.Trace,
	}
}
