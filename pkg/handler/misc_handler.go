// Handler for miscellaneous endpoints such as health check

package handler

import (
	"net/http"

	"github.com/yumyai/genepredict/pkg/handler/types"
)

// GET /health. Model availability is a flag here, never an error.
func (app *AppContext) HealthCheck(w http.ResponseWriter, r *http.Request) {

	response := types.HealthResponse{
		Status:         "healthy",
		ModelAvailable: app.Predictions.Available(),
		ModelInfo:      app.Predictions.ModelInfo(),
	}

	writeJSON(w, http.StatusOK, response)
}

// GET /model-info
func (app *AppContext) ModelInfoHandler(w http.ResponseWriter, r *http.Request) {

	response := types.ModelInfoResponse{
		ModelInfo:      app.Predictions.ModelInfo(),
		ModelAvailable: app.Predictions.Available(),
		RequiredFiles:  app.Predictions.RequiredFiles(),
	}

	writeJSON(w, http.StatusOK, response)
}
