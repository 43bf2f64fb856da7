package handler

// DI for all handlers alike. Built once in main, read-only afterwards.

import (
	"database/sql"

	"github.com/yumyai/genepredict/pkg/model"
)

type AppContext struct {
	Predictions      *model.PredictionService
	PlaceDB          *sql.DB
	DefaultOceanDate string
}
