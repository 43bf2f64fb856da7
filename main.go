package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yumyai/genepredict/internal/config"
	"github.com/yumyai/genepredict/internal/util"
	"github.com/yumyai/genepredict/logger"
	ggdb "github.com/yumyai/genepredict/pkg/db"
	"github.com/yumyai/genepredict/pkg/handler"
	"github.com/yumyai/genepredict/pkg/metric"
	"github.com/yumyai/genepredict/pkg/middle"
	"github.com/yumyai/genepredict/pkg/model"
	"github.com/yumyai/genepredict/pkg/predictor"
	"go.uber.org/zap"
)

const VERSION = "1.0.0"

func main() {

	// Try load env before anything reads it
	dotenvErr := config.LoadDotenv()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Establish logger
	logLevel := logger.ParseLevel(cfg.LogLevel)
	if err := logger.InitLogger(logLevel); err != nil {
		panic(err)
	}
	defer logger.Sync() // Make sure that the buffered is flushed.

	if dotenvErr != nil {
		logger.Warn("No .env found, using local environment")
	}

	logger.Info("Start:", zap.String("Version", VERSION), zap.String("env", cfg.AppEnv))

	metric.Init(cfg.StatsdAddr, cfg.AppName, cfg.AppEnv, cfg.MetricSamplingRate)
	defer metric.Close()

	artifacts := ggdb.NewArtifactStore(cfg.ModelDir)
	if !util.DirExists(cfg.ModelDir) {
		logger.Warn("Model directory does not exist", zap.String("MODEL_DIR", cfg.ModelDir))
	} else if err := artifacts.Check(); err != nil {
		logger.Warn("Model artifacts incomplete, predictions will be refused", zap.Error(err))
	}

	p, resolveErr := predictor.Resolve(predictor.Options{
		Command:  cfg.PredictorCmd,
		Args:     cfg.PredictorArgs,
		URL:      cfg.PredictorURL,
		Timeout:  cfg.PredictorTimeout,
		ModelDir: cfg.ModelDir,
	})
	if resolveErr != nil {
		logger.Error("Predictor not loaded, predictions will be refused", zap.Error(resolveErr))
	}

	// Connect to gazetteer
	startCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	placeDB, err := ggdb.OpenPlaceDB(startCtx, cfg.PlacesDB)
	cancel()
	if err != nil {
		logger.Fatal("Cannot open place database", zap.String("PLACES_DB", cfg.PlacesDB), zap.Error(err))
	}
	defer placeDB.Close()

	app := &handler.AppContext{
		Predictions:      model.NewPredictionService(artifacts, p, resolveErr),
		PlaceDB:          placeDB,
		DefaultOceanDate: cfg.DefaultOceanDate,
	}

	mlog := middle.CreateMiddlewareLogger(logLevel)
	defer mlog.Sync()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewHandler(app, mlog, cfg.CORSAllowOrigin),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server starting on", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Error starting server:", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	// Let in-flight predictions finish, bounded by the predictor timeout.
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.PredictorTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
