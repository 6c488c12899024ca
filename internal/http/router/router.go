package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"volunteer-dispatch/internal/http/handlers"
	obs "volunteer-dispatch/internal/http/middleware"
	"volunteer-dispatch/internal/logx"
)

const defaultTimeout = 5 * time.Second

// Deps groups what New mounts. RateLimit and Metrics are optional.
type Deps struct {
	Logger      logx.Logger
	Base        *handlers.Handlers
	Volunteers  *handlers.VolunteerHandler
	Calls       *handlers.CallHandler
	Assignments *handlers.AssignmentHandler
	Admin       *handlers.AdminHandler
	Events      *handlers.EventsHandler
	RateLimit   func(http.Handler) http.Handler
	Metrics     http.Handler
	Timeout     time.Duration
}

// New constructs a chi-based http.Handler with base middleware and routes.
// The event stream is exempt from the request timeout.
func New(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = logx.Nop()
	}
	if d.Timeout <= 0 {
		d.Timeout = defaultTimeout
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(obs.Observability(d.Logger))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}
	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	r.Group(func(r chi.Router) {
		if d.RateLimit != nil {
			r.Use(d.RateLimit)
		}
		r.Get("/events", d.Events.Stream)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(d.Timeout))

			r.Post("/login", d.Volunteers.Login)

			r.Route("/volunteers", func(r chi.Router) {
				r.Get("/", d.Volunteers.List)
				r.Post("/", d.Volunteers.Create)
				r.Get("/{id}", d.Volunteers.Get)
				r.Put("/{id}", d.Volunteers.Update)
				r.Delete("/{id}", d.Volunteers.Delete)
				r.Get("/{id}/assignments", d.Volunteers.Assignments)
			})

			r.Route("/calls", func(r chi.Router) {
				r.Get("/", d.Calls.List)
				r.Post("/", d.Calls.Create)
				r.Get("/open", d.Calls.Open)
				r.Get("/counts", d.Calls.Counts)
				r.Get("/{id}", d.Calls.Get)
				r.Put("/{id}", d.Calls.Update)
				r.Delete("/{id}", d.Calls.Delete)
				r.Post("/{id}/select", d.Calls.Select)
			})

			r.Post("/assignments/{id}/complete", d.Assignments.Complete)
			r.Post("/assignments/{id}/cancel", d.Assignments.Cancel)

			r.Route("/admin", func(r chi.Router) {
				r.Get("/clock", d.Admin.Clock)
				r.Post("/clock/advance", d.Admin.Advance)
				r.Get("/risk-window", d.Admin.RiskWindow)
				r.Put("/risk-window", d.Admin.SetRiskWindow)
				r.Get("/simulator", d.Admin.Simulator)
				r.Post("/simulator/start", d.Admin.StartSimulator)
				r.Post("/simulator/stop", d.Admin.StopSimulator)
				r.Post("/reset", d.Admin.Reset)
				r.Post("/initialize", d.Admin.Initialize)
			})
		})
	})

	return r
}
