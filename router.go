package main

import (
	"net/http"

	"github.com/yumyai/genepredict/pkg/handler"
	"github.com/yumyai/genepredict/pkg/middle"
	"go.uber.org/zap"
)

func NewRouter(app *handler.AppContext) *http.ServeMux {
	mux := http.NewServeMux()

	// Error route
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	// Prediction API
	mux.HandleFunc("GET /health", app.HealthCheck)
	mux.HandleFunc("POST /predict", app.PredictHandler)
	mux.HandleFunc("GET /model-info", app.ModelInfoHandler)

	// Map support
	mux.HandleFunc("GET /popular-places", app.PopularPlacesHandler)
	mux.HandleFunc("GET /geocode", app.GeocodeHandler)
	mux.HandleFunc("GET /ocean-data", app.OceanDataHandler)

	return mux
}

// NewHandler is the router wrapped in the middleware stack.
func NewHandler(app *handler.AppContext, mlog *zap.Logger, allowOrigin string) http.Handler {
	return withMiddleware(NewRouter(app), mlog, allowOrigin)
}

// Outermost first. Metrics sit outside the panic recovery in
// LoggingMiddleware so recovered requests are counted as 500.
func withMiddleware(h http.Handler, mlog *zap.Logger, allowOrigin string) http.Handler {
	return middle.Chain(h,
		middle.CORSMiddleware(allowOrigin),
		middle.RequestIDMiddleware(mlog),
		middle.MetricsMiddleware(),
		middle.LoggingMiddleware(mlog),
	)
}
