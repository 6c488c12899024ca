package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/dig"
	"golang.org/x/sync/errgroup"

	"volunteer-dispatch/internal/logx"
	"volunteer-dispatch/internal/notify"
	"volunteer-dispatch/internal/service/clock"
	"volunteer-dispatch/internal/service/simulator"
	"volunteer-dispatch/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the dispatch service from a built container.
type Runner struct {
	runFn func(*dig.Container) error
	exit  func(code int)
}

// NewRunner returns a Runner bound to the service run loop.
func NewRunner() *Runner {
	return &Runner{runFn: run, exit: os.Exit}
}

// MustRun runs the service until its context ends. Failures other than
// cancellation are logged and terminate the process.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}

	logger := logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })

	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		if r.exit != nil {
			r.exit(1)
		}
	}
}

func run(container *dig.Container) error {
	return container.Invoke(serve)
}

type serveIn struct {
	dig.In

	Ctx       context.Context
	Logger    logx.Logger
	Server    *http.Server
	Pprof     *http.Server `name:"pprof_server" optional:"true"`
	Clock     *clock.Authority
	Simulator *simulator.Simulator
	Feed      *notify.Feed
	Publisher *kafka.Publisher
	Stores    *Stores
}

func serve(in serveIn) error {
	defer closeResources(in)

	if err := in.Clock.Load(in.Ctx); err != nil {
		return fmt.Errorf("load clock: %w", err)
	}

	g, gctx := errgroup.WithContext(in.Ctx)
	if in.Publisher != nil {
		events, cancel := in.Feed.Subscribe(256)
		defer cancel()
		g.Go(func() error { return in.Publisher.Run(gctx, events) })
	}
	for _, srv := range []*http.Server{in.Server, in.Pprof} {
		if srv == nil {
			continue
		}
		g.Go(func() error {
			in.Logger.Info("listening", logx.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen %s: %w", srv.Addr, err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		in.Logger.Info("shutting down service-dispatch")
		in.Simulator.Stop()
		// Closing the feed ends open event streams so Shutdown can drain.
		in.Feed.Close()
		gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
		if in.Pprof != nil {
			gracefulShutdown(in.Pprof, in.Logger, shutdownTimeout)
		}
		return nil
	})

	err := g.Wait()
	if err == nil || errors.Is(err, context.Canceled) {
		return in.Ctx.Err()
	}
	return err
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown error", logx.String("addr", srv.Addr), logx.Err(err))
	}
}

func closeResources(in serveIn) {
	in.Simulator.Stop()
	in.Clock.Close()
	in.Feed.Close()
	if err := in.Publisher.Close(); err != nil {
		in.Logger.Error("kafka close error", logx.Err(err))
	}
	in.Stores.Close()
	_ = in.Logger.Sync()
}
