package application

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"premium_api/internal/config"
	"premium_api/internal/domain/service/premium"
	"premium_api/internal/infrastructure/model"
	"premium_api/internal/server"
	"premium_api/pkg/application/modules"
	"premium_api/pkg/contextx"
	"premium_api/pkg/logx"
	"premium_api/pkg/metrics"
	"premium_api/pkg/middlewarex"
)

var errModelNotLoaded = errors.New("model is not loaded")

// Run loads the model and serves the API, probe and metrics servers until ctx
// is cancelled or one of them fails. A missing or invalid artifact stops the
// start.
func Run(ctx context.Context, version string) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	// 2. Logger
	log := slog.New(logx.NewHandler(os.Stdout, cfg.Log.Format, cfg.Log.Level)).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, version),
	)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	// 3. Model
	forest, err := model.Load(cfg.Model.Path)
	if err != nil {
		return fmt.Errorf("model.Load: %w", err)
	}

	modelVersion := cmp.Or(forest.Version(), cfg.Model.Version)

	log.Info("model loaded",
		slog.String(logx.FieldModelPath, cfg.Model.Path),
		slog.String(logx.FieldModelVersion, modelVersion),
		slog.Any(logx.FieldClasses, forest.Classes()),
		slog.Int(logx.FieldEstimators, forest.Estimators()),
	)

	// 4. Services
	premiumService := premium.NewService(forest, modelVersion).
		WithRecorder(metrics.NewPredictionCollector(prometheus.DefaultRegisterer))

	// 5. Router
	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger(log),
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.Log.FieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.Log.FieldMaxLen),
	)

	server.NewServer(server.NewPremiumServer(premiumService)).RegisterRoutes(router)

	// 6. Modules
	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ListenAddress:     cfg.HTTP.ListenAddress,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, router)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       version,
		ModelVersion:  modelVersion,
		ListenAddress: cfg.Probe.ListenAddress,
		Ready: func() error {
			if !premiumService.Health().ModelLoaded {
				return errModelNotLoaded
			}

			return nil
		},
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      prometheus.DefaultGatherer,
	}.Run(ctx, g)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	log.Info("application stopped")

	return nil
}
