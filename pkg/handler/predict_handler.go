package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yumyai/genepredict/logger"
	"github.com/yumyai/genepredict/pkg/handler/request"
	"github.com/yumyai/genepredict/pkg/handler/types"
	"github.com/yumyai/genepredict/pkg/middle"
	"github.com/yumyai/genepredict/pkg/model"
	"go.uber.org/zap"
)

// Predict bodies are a handful of short reads; anything bigger is a mistake.
const maxPredictBodyBytes = 8 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

func writePredictError(w http.ResponseWriter, r *http.Request, perr *model.PredictError) {
	status := perr.Code.HTTPStatus()

	fields := []zap.Field{
		zap.String("request_id", middle.RequestID(r.Context())),
		zap.String("code", perr.Code.String()),
		zap.Int("status", status),
		zap.Error(perr),
	}
	if status >= http.StatusInternalServerError {
		logger.Error("Prediction request failed", fields...)
	} else {
		logger.Info("Prediction request rejected", fields...)
	}

	writeJSON(w, status, types.NewErrorResponse(perr))
}

// POST /predict
func (app *AppContext) PredictHandler(w http.ResponseWriter, r *http.Request) {

	r.Body = http.MaxBytesReader(w, r.Body, maxPredictBodyBytes)

	req, err := request.DecodePredictRequest(r.Body)
	if err != nil {
		code := model.ErrorCodeMalformedRequest
		if errors.Is(err, request.ErrNoJSONData) || errors.Is(err, request.ErrNoSequences) {
			code = model.ErrorCodeNoInput
		}
		writePredictError(w, r, model.NewPredictError(code, err))
		return
	}

	logger.Debug("Predict request",
		zap.String("request_id", middle.RequestID(r.Context())),
		zap.Int("sequences", len(req.Sequences)),
	)

	result, err := app.Predictions.Predict(r.Context(), req.Sequences)
	if err != nil {
		writePredictError(w, r, model.AsPredictError(err))
		return
	}

	writeJSON(w, http.StatusOK, types.PredictResponse{
		Success:       true,
		PredictResult: result,
	})
}
