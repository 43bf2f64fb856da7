package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name      string
		artifacts bool
	}{
		{"artifacts present", true},
		{"artifacts absent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, tt.artifacts, &stubPredictor{species: "x"})

			rr := httptest.NewRecorder()
			app.HealthCheck(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, http.StatusOK, rr.Code)
			body := decodeBody(t, rr)
			assert.Equal(t, "healthy", body["status"])
			assert.Equal(t, tt.artifacts, body["model_available"])
			info := body["model_info"].(map[string]any)
			assert.Equal(t, "1.0.0", info["version"])
			assert.Equal(t, []any{"COI", "16S", "18S", "ITS", "General"}, info["supported_genes"])
		})
	}
}

func TestModelInfoHandler(t *testing.T) {
	app := newTestApp(t, false, nil)

	rr := httptest.NewRecorder()
	app.ModelInfoHandler(rr, httptest.NewRequest(http.MethodGet, "/model-info", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, false, body["model_available"])
	assert.Equal(t, []any{
		"stack_meta_clf.pkl",
		"stack_label_encoder.pkl",
		"lgb_models_list.pkl",
		"xgb_models_list.pkl",
	}, body["required_files"])
	info := body["model_info"].(map[string]any)
	assert.Equal(t, "Stacked Ensemble (LightGBM + XGBoost + Meta Classifier)", info["model_type"])
}
