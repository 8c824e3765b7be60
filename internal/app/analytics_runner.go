package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"parcel-tracking-service/internal/analytics"
	"parcel-tracking-service/internal/config"
	"parcel-tracking-service/internal/logx"
	"parcel-tracking-service/internal/repository"
)

// MustBuildAnalyticsContainer builds the DI container for the one-shot
// analytics job. It shares the core and DB providers with the server.
func MustBuildAnalyticsContainer(ctx context.Context) *dig.Container {
	container, err := buildAnalyticsContainer(ctx)
	if err != nil {
		panic(fmt.Errorf("failed to build analytics container: %w", err))
	}
	return container
}

func buildAnalyticsContainer(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, connectDbWithRetry); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := provideAll(container,
		repository.NewDeliveryRepo,
		func(cfg *config.Config) *analytics.Exporter {
			return analytics.NewExporter(cfg.Report.Path)
		},
		func(repo *repository.DeliveryRepo, exp *analytics.Exporter, logger logx.Logger) *analytics.Job {
			return analytics.NewJob(repo, exp, logger)
		},
	); err != nil {
		return nil, fmt.Errorf("analytics: %w", err)
	}
	return container, nil
}

// AnalyticsRunner runs the analytics job once and prints the console report.
type AnalyticsRunner struct {
	runFn func(*dig.Container) error
}

// NewAnalyticsRunner returns a new AnalyticsRunner.
func NewAnalyticsRunner() *AnalyticsRunner {
	return &AnalyticsRunner{runFn: runAnalytics}
}

// MustRun executes the job using the provided DI container.
func (r *AnalyticsRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runAnalytics(container *dig.Container) error {
	return container.Invoke(func(
		ctx context.Context,
		pool *pgxpool.Pool,
		job *analytics.Job,
		exp *analytics.Exporter,
		logger logx.Logger,
	) error {
		defer pool.Close()

		snap, err := job.Run(ctx)
		if err != nil {
			return err
		}
		analytics.Render(os.Stdout, snap)
		logger.Info("analytics report written", logx.String("path", exp.Path()))
		return nil
	})
}
