package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"volunteer-dispatch/internal/metrics"
)

type metricsOut struct {
	dig.Out

	Registry               *prometheus.Registry
	Engine                 *metrics.Engine
	GatewayRetriesTotal    prometheus.Counter `name:"gateway_retries_total"`
	PublishFailuresTotal   prometheus.Counter `name:"change_publish_failures_total"`
	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
}

// provideMetrics registers the service collectors on a fresh registry. HTTP
// request metrics live on the default registry and are gathered alongside.
func provideMetrics() (metricsOut, error) {
	reg := prometheus.NewRegistry()
	out := metricsOut{
		Registry:               reg,
		Engine:                 metrics.NewEngine(),
		GatewayRetriesTotal:    metrics.NewGatewayRetriesTotal(),
		PublishFailuresTotal:   metrics.NewPublishFailuresTotal(),
		RateLimitExceededTotal: metrics.NewRateLimitExceededTotal(),
	}
	collectors := append(out.Engine.Collectors(),
		out.GatewayRetriesTotal,
		out.PublishFailuresTotal,
		out.RateLimitExceededTotal,
	)
	if err := registerAll(reg, collectors...); err != nil {
		return metricsOut{}, err
	}
	return out, nil
}

func registerAll(reg prometheus.Registerer, cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return fmt.Errorf("register collector: %w", err)
		}
	}
	return nil
}
