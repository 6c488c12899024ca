package metrics

import "github.com/prometheus/client_golang/prometheus"

// Engine groups the counters of the clock, sweep and simulator.
type Engine struct {
	Sweeps                  prometheus.Counter
	SweepsCoalesced         prometheus.Counter
	SweepErrors             prometheus.Counter
	AssignmentsExpired      prometheus.Counter
	SimulatorTicks          prometheus.Counter
	SimulatorActivityErrors prometheus.Counter
	SimulatorRunning        prometheus.Gauge
}

// NewEngine returns unregistered engine collectors.
func NewEngine() *Engine {
	return &Engine{
		Sweeps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sweeps_total",
			Help: "Total number of risk/expiry sweeps started",
		}),
		SweepsCoalesced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sweeps_coalesced_total",
			Help: "Total number of sweep triggers dropped because a sweep was in flight",
		}),
		SweepErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sweep_errors_total",
			Help: "Total number of sweeps that failed",
		}),
		AssignmentsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "assignments_expired_total",
			Help: "Total number of calls retired as expired by the sweep",
		}),
		SimulatorTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "simulator_ticks_total",
			Help: "Total number of simulator clock advances",
		}),
		SimulatorActivityErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "simulator_activity_errors_total",
			Help: "Total number of failed synthetic volunteer actions",
		}),
		SimulatorRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "simulator_running",
			Help: "1 while the simulator owns the clock",
		}),
	}
}

// Collectors returns every engine collector for registration.
func (e *Engine) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		e.Sweeps, e.SweepsCoalesced, e.SweepErrors, e.AssignmentsExpired,
		e.SimulatorTicks, e.SimulatorActivityErrors, e.SimulatorRunning,
	}
}

// NewGatewayRetriesTotal returns a Prometheus counter for the number of retry attempts performed by gateways
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed by gateways",
	})
}

// NewPublishFailuresTotal returns a Prometheus counter for change events the broker rejected
func NewPublishFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "change_publish_failures_total",
		Help: "Total number of change notifications that failed to publish",
	})
}

// NewRateLimitExceededTotal returns a Prometheus counter for requests rejected by the rate limiter
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of requests rejected by the rate limiter",
	})
}
