package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"
	"golang.org/x/crypto/bcrypt"

	"volunteer-dispatch/internal/config"
	"volunteer-dispatch/internal/guard"
	"volunteer-dispatch/internal/logx"
	"volunteer-dispatch/internal/metrics"
	"volunteer-dispatch/internal/notify"
	"volunteer-dispatch/internal/seed"
	"volunteer-dispatch/internal/service/admin"
	"volunteer-dispatch/internal/service/assignment"
	"volunteer-dispatch/internal/service/call"
	"volunteer-dispatch/internal/service/clock"
	"volunteer-dispatch/internal/service/simulator"
	"volunteer-dispatch/internal/service/volunteer"
	"volunteer-dispatch/internal/validation"
)

type dbConnectFunc func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect  dbConnectFunc
	loadConfig func() (*config.Config, error)
	logFatalf  func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect:  connectDbWithRetry,
		loadConfig: config.Load,
		logFatalf:  log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithConfig replaces flag and environment loading with a fixed configuration.
func (b *ContainerBuilder) WithConfig(cfg *config.Config) *ContainerBuilder {
	if cfg != nil {
		b.loadConfig = func() (*config.Config, error) { return cfg, nil }
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerStorage(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
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

func registerCore(container *dig.Container, ctx context.Context, load func() (*config.Config, error)) error {
	return provideAll(container,
		func() context.Context { return ctx },
		load,
		func(cfg *config.Config) (logx.Logger, error) { return NewLogger(cfg.Log) },
		provideMetrics,
	)
}

func registerStorage(container *dig.Container, connect dbConnectFunc) error {
	return provideAll(container,
		func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*Stores, error) {
			return openStores(ctx, cfg, logger, connect)
		},
	)
}

// operationTimeout bounds every service call.
type operationTimeout time.Duration

// registries holds the call and volunteer observer registries.
type registries struct {
	Calls      *notify.Registry
	Volunteers *notify.Registry
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) operationTimeout { return operationTimeout(cfg.Engine.OperationTimeout) },
		guard.New,
		validation.New,
		func() registries { return registries{Calls: notify.NewRegistry(), Volunteers: notify.NewRegistry()} },
		provideGeocoding,
		func(g *guard.Guard, st *Stores, logger logx.Logger, m *metrics.Engine, cfg *config.Config, t operationTimeout) *clock.Authority {
			return clock.NewAuthority(g, st.Clock, logger, m, cfg.Engine.RiskWindow, time.Duration(t))
		},
		func(g *guard.Guard, st *Stores, auth *clock.Authority, regs registries, logger logx.Logger, t operationTimeout) *assignment.Service {
			svc := assignment.NewService(g,
				assignment.Stores{Volunteers: st.Volunteers, Calls: st.Calls, Assignments: st.Assignments},
				auth,
				assignment.Notifiers{Calls: regs.Calls, Volunteers: regs.Volunteers},
				logger, time.Duration(t))
			auth.SetSweeper(svc)
			return svc
		},
		func(g *guard.Guard, st *Stores, geo geocoding, auth *clock.Authority, regs registries, v *validation.Validator, logger logx.Logger, t operationTimeout) *call.Service {
			return call.NewService(call.Deps{
				Guard:       g,
				Calls:       st.Calls,
				Assignments: st.Assignments,
				Volunteers:  st.Volunteers,
				Geocoder:    geo.Resolver,
				Clock:       auth,
				Events:      regs.Calls,
				Validator:   v,
				Logger:      logger,
			}, time.Duration(t))
		},
		func(g *guard.Guard, st *Stores, geo geocoding, regs registries, v *validation.Validator, logger logx.Logger, t operationTimeout) *volunteer.Service {
			return volunteer.NewService(volunteer.Deps{
				Guard:       g,
				Volunteers:  st.Volunteers,
				Assignments: st.Assignments,
				Calls:       st.Calls,
				Geocoder:    geo.Resolver,
				Events:      regs.Volunteers,
				Validator:   v,
				Logger:      logger,
			}, time.Duration(t))
		},
		func(g *guard.Guard, auth *clock.Authority, vols *volunteer.Service, calls *call.Service, asg *assignment.Service, logger logx.Logger, m *metrics.Engine, cfg *config.Config) *simulator.Simulator {
			return simulator.New(simulator.Deps{
				Guard:       g,
				Clock:       auth,
				Volunteers:  vols,
				Calls:       calls,
				Assignments: asg,
				Logger:      logger,
				Metrics:     m,
			}, simulator.Options{
				Tick:                cfg.Simulator.Tick,
				SelectProbability:   cfg.Simulator.SelectProbability,
				CompleteProbability: cfg.Simulator.CompleteProbability,
				CancelProbability:   cfg.Simulator.CancelProbability,
			})
		},
		provideAdmin,
		provideFeed,
		providePublisher,
	)
}

func provideAdmin(
	g *guard.Guard,
	auth *clock.Authority,
	sim *simulator.Simulator,
	st *Stores,
	regs registries,
	geo geocoding,
	logger logx.Logger,
	cfg *config.Config,
	t operationTimeout,
) *admin.Service {
	d := admin.Deps{
		Guard:           g,
		Clock:           auth,
		Simulator:       sim,
		Volunteers:      st.Volunteers,
		Calls:           st.Calls,
		Assignments:     st.Assignments,
		CallEvents:      regs.Calls,
		VolunteerEvents: regs.Volunteers,
		Hash: func(password string) (string, error) {
			return volunteer.HashPassword(password, bcrypt.DefaultCost)
		},
		Seed:       seed.Default,
		Logger:     logger,
		RiskWindow: cfg.Engine.RiskWindow,
	}
	if geo.Book != nil {
		d.AddressBook = geo.Book
	}
	return admin.NewService(d, time.Duration(t))
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		newRateLimiter,
		newRateLimitMiddleware,
		provideHandlers,
		provideRouter,
		serverProvider,
		providePprofServer,
	)
}
