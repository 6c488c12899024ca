package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"volunteer-dispatch/internal/config"
	"volunteer-dispatch/internal/logx"
	"volunteer-dispatch/internal/notify"
	"volunteer-dispatch/internal/service/clock"
	"volunteer-dispatch/internal/transport/kafka"
)

func provideFeed(auth *clock.Authority, regs registries) *notify.Feed {
	f := notify.NewFeed(auth.Now)
	f.Watch(notify.EntityCall, regs.Calls)
	f.Watch(notify.EntityVolunteer, regs.Volunteers)
	f.WatchClock(auth)
	return f
}

type publisherIn struct {
	dig.In

	Config   *config.Config
	Logger   logx.Logger
	Failures prometheus.Counter `name:"change_publish_failures_total"`
}

// providePublisher returns nil when Kafka is not configured.
func providePublisher(in publisherIn) (*kafka.Publisher, error) {
	p, err := kafka.NewPublisher(in.Config.Kafka.Brokers, in.Config.Kafka.Topic, in.Logger, in.Failures)
	if err != nil {
		return nil, err
	}
	if p == nil {
		in.Logger.Info("kafka publishing disabled")
	}
	return p, nil
}
