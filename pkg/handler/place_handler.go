package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/yumyai/genepredict/logger"
	"github.com/yumyai/genepredict/pkg/handler/types"
	"github.com/yumyai/genepredict/pkg/model"
	"go.uber.org/zap"
)

const fallbackOceanDate = "2024-01-01"

// GET /popular-places
func (app *AppContext) PopularPlacesHandler(w http.ResponseWriter, r *http.Request) {

	places, err := model.GetPopularPlaces(r.Context(), app.PlaceDB)
	if err != nil {
		logger.Error("Popular places query failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, types.ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, types.PopularPlacesResponse{
		Success: true,
		Places:  places,
	})
}

// GET /geocode?place=
func (app *AppContext) GeocodeHandler(w http.ResponseWriter, r *http.Request) {

	place := r.URL.Query().Get("place")
	if place == "" {
		writeJSON(w, http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Error:   "Place parameter is required",
		})
		return
	}

	found, err := model.Geocode(r.Context(), app.PlaceDB, place)

	switch {
	case errors.Is(err, model.ErrPlaceNotFound):
		writeJSON(w, http.StatusNotFound, types.ErrorResponse{
			Success: false,
			Error:   fmt.Sprintf("Place '%s' not found in our database", place),
		})
	case err != nil:
		logger.Error("Geocode query failed", zap.String("place", place), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, types.ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
	default:
		writeJSON(w, http.StatusOK, types.GeocodeResponse{
			Success: true,
			Place:   found,
		})
	}
}

// GET /ocean-data?lat=&lon=&date=
func (app *AppContext) OceanDataHandler(w http.ResponseWriter, r *http.Request) {

	query := r.URL.Query()

	var errorMessages []string

	lat, errLat := model.ParseCoordinate("lat", query.Get("lat"))
	if errLat != nil {
		errorMessages = append(errorMessages, errLat.Error())
	}
	lon, errLon := model.ParseCoordinate("lon", query.Get("lon"))
	if errLon != nil {
		errorMessages = append(errorMessages, errLon.Error())
	}

	if len(errorMessages) > 0 {
		writeJSON(w, http.StatusInternalServerError, types.OceanErrorResponse{
			Error:   strings.Join(errorMessages, "; "),
			Message: "Failed to fetch ocean data",
		})
		return
	}

	date := query.Get("date")
	if date == "" {
		date = app.DefaultOceanDate
	}
	if date == "" {
		date = fallbackOceanDate
	}

	writeJSON(w, http.StatusOK, model.GetOceanData(lat, lon, date))
}
