package app

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/dig"

	"volunteer-dispatch/internal/config"
	"volunteer-dispatch/internal/http/handlers"
	"volunteer-dispatch/internal/http/middleware/ratelimit"
	"volunteer-dispatch/internal/http/pprofserver"
	"volunteer-dispatch/internal/http/router"
	"volunteer-dispatch/internal/logx"
	"volunteer-dispatch/internal/notify"
	"volunteer-dispatch/internal/service/admin"
	"volunteer-dispatch/internal/service/assignment"
	"volunteer-dispatch/internal/service/call"
	"volunteer-dispatch/internal/service/volunteer"
)

func newRateLimiter(cfg *config.Config) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return nil
	}
	return ratelimit.NewTokenBucketLimiter(nil, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

type rateLimitIn struct {
	dig.In

	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter
}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Counter, in.Limiter, ratelimit.HeaderOrIP(handlers.RequesterHeader))
}

type handlersOut struct {
	dig.Out

	Base        *handlers.Handlers
	Volunteers  *handlers.VolunteerHandler
	Calls       *handlers.CallHandler
	Assignments *handlers.AssignmentHandler
	Admin       *handlers.AdminHandler
	Events      *handlers.EventsHandler
}

func provideHandlers(
	logger logx.Logger,
	cfg *config.Config,
	vols *volunteer.Service,
	calls *call.Service,
	asg *assignment.Service,
	adm *admin.Service,
	feed *notify.Feed,
) handlersOut {
	return handlersOut{
		Base:        handlers.New(logger),
		Volunteers:  handlers.NewVolunteerHandler(logger, vols, asg),
		Calls:       handlers.NewCallHandler(logger, calls, asg),
		Assignments: handlers.NewAssignmentHandler(logger, asg),
		Admin:       handlers.NewAdminHandler(logger, adm).WithDefaultInterval(cfg.Simulator.IntervalMinutes),
		Events:      handlers.NewEventsHandler(logger, feed),
	}
}

type routerIn struct {
	dig.In

	Config      *config.Config
	Logger      logx.Logger
	Registry    *prometheus.Registry
	RateLimit   *ratelimit.Middleware
	Base        *handlers.Handlers
	Volunteers  *handlers.VolunteerHandler
	Calls       *handlers.CallHandler
	Assignments *handlers.AssignmentHandler
	Admin       *handlers.AdminHandler
	Events      *handlers.EventsHandler
}

func provideRouter(in routerIn) http.Handler {
	gatherers := prometheus.Gatherers{prometheus.DefaultGatherer, in.Registry}
	return router.New(router.Deps{
		Logger:      in.Logger,
		Base:        in.Base,
		Volunteers:  in.Volunteers,
		Calls:       in.Calls,
		Assignments: in.Assignments,
		Admin:       in.Admin,
		Events:      in.Events,
		RateLimit:   in.RateLimit.Handler(),
		Metrics:     promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{}),
		Timeout:     in.Config.Engine.OperationTimeout + 2*time.Second,
	})
}

type pprofOut struct {
	dig.Out

	Server *http.Server `name:"pprof_server"`
}

// providePprofServer yields a nil server when profiling is disabled.
func providePprofServer(cfg *config.Config) pprofOut {
	if !cfg.Pprof.Enabled {
		return pprofOut{}
	}
	return pprofOut{Server: pprofserver.NewServer(pprofserver.Config{
		Addr: cfg.Pprof.Addr,
		User: cfg.Pprof.User,
		Pass: cfg.Pprof.Pass,
	})}
}
