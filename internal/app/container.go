package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"parcel-tracking-service/internal/auth"
	"parcel-tracking-service/internal/config"
	"parcel-tracking-service/internal/http/handlers"
	"parcel-tracking-service/internal/http/middleware/loginlimit"
	"parcel-tracking-service/internal/http/middleware/sessiongate"
	"parcel-tracking-service/internal/http/router"
	"parcel-tracking-service/internal/logx"
	"parcel-tracking-service/internal/repository"
	"parcel-tracking-service/internal/service/delivery"
	"parcel-tracking-service/internal/tracking"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function.
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerAuth(container); err != nil {
		return nil, fmt.Errorf("auth: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		func() *log.Logger { return log.Default() },
		NewLogger,
		config.Load,
		provideMetrics,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

func registerAuth(container *dig.Container) error {
	return provideAll(container,
		repository.NewUserRepo,
		func() auth.Clock { return auth.RealClock{} },
		func(cfg *config.Config, clock auth.Clock) *auth.AttemptLedger {
			return auth.NewAttemptLedger(clock, cfg.Auth.MaxLoginAttempts, cfg.Auth.LockoutWindow)
		},
		func(clock auth.Clock) *auth.SessionStore {
			return auth.NewSessionStore(clock)
		},
		func(
			cfg *config.Config,
			users *repository.UserRepo,
			ledger *auth.AttemptLedger,
			sessions *auth.SessionStore,
			clock auth.Clock,
			logger logx.Logger,
		) *auth.Service {
			return auth.NewService(users, ledger, sessions, clock, cfg.Auth.SessionTTL, logger)
		},
	)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewDeliveryRepo,
		func(repo *repository.DeliveryRepo) *tracking.Issuer {
			return tracking.NewIssuer(repo)
		},
		func() time.Duration { return 3 * time.Second },
		func(
			repo *repository.DeliveryRepo,
			issuer *tracking.Issuer,
			timeout time.Duration,
			logger logx.Logger,
		) *delivery.Service {
			return delivery.NewService(repo, issuer, timeout, logger)
		},
	)
}

type deliveryHandlerIn struct {
	dig.In

	Logger  logx.Logger
	Usecase *delivery.Service
	Created prometheus.Counter `name:"deliveries_created_total"`
}

type authHandlerIn struct {
	dig.In

	Logger   logx.Logger
	Svc      *auth.Service
	Failures prometheus.Counter `name:"login_failures_total"`
	Cfg      *config.Config
}

type lockoutIn struct {
	dig.In

	Logger   logx.Logger
	Lockouts prometheus.Counter `name:"login_lockouts_total"`
	Svc      *auth.Service
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		func(in deliveryHandlerIn) *handlers.DeliveryHandler {
			return handlers.NewDeliveryHandler(in.Logger, in.Usecase, in.Created)
		},
		func(in authHandlerIn) *handlers.AuthHandler {
			return handlers.NewAuthHandler(in.Logger, in.Svc, in.Failures, in.Cfg.Auth.SessionTTL)
		},
		func(logger logx.Logger, svc *delivery.Service) *handlers.ManagementHandler {
			return handlers.NewManagementHandler(logger, svc)
		},
		handlers.NewContactHandler,
		func(in lockoutIn) *loginlimit.Middleware {
			return loginlimit.New(in.Logger, in.Lockouts, in.Svc)
		},
		func(logger logx.Logger, svc *auth.Service) *sessiongate.Middleware {
			return sessiongate.New(logger, svc)
		},
		router.New,
		serverProvider,
	)
}
