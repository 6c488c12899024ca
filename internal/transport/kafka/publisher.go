package kafka

import (
	"context"
	"strings"
	"sync"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"

	"volunteer-dispatch/internal/logx"
	"volunteer-dispatch/internal/notify"
)

// Publisher forwards change notifications to a Kafka topic.
type Publisher struct {
	producer sarama.AsyncProducer
	topic    string
	logger   logx.Logger
	failures prometheus.Counter

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewPublisher creates a publisher. It returns nil when no brokers or topic are
// configured; a nil Publisher is a valid no-op.
func NewPublisher(brokers []string, topic string, logger logx.Logger, failures prometheus.Counter) (*Publisher, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Return.Errors = true
	cfg.Producer.Return.Successes = false

	p, err := sarama.NewAsyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return newPublisher(p, topic, logger, failures), nil
}

func newPublisher(p sarama.AsyncProducer, topic string, logger logx.Logger, failures prometheus.Counter) *Publisher {
	pub := &Publisher{producer: p, topic: topic, logger: logger, failures: failures}
	pub.wg.Add(1)
	go pub.drainErrors()
	return pub
}

func (p *Publisher) drainErrors() {
	defer p.wg.Done()
	for perr := range p.producer.Errors() {
		p.failures.Inc()
		p.logger.Warn("kafka: publish failed", logx.String("topic", p.topic), logx.Err(perr.Err))
	}
}

// Run publishes every change received on events until ctx is done or the
// channel is closed.
func (p *Publisher) Run(ctx context.Context, events <-chan notify.Change) error {
	if p == nil {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case c, ok := <-events:
			if !ok {
				return nil
			}
			p.publish(ctx, FromChange(c))
		}
	}
}

func (p *Publisher) publish(ctx context.Context, ev EventDTO) {
	body, err := ev.Encode()
	if err != nil {
		p.failures.Inc()
		p.logger.Error("kafka: encode event", logx.Err(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.Key()),
		Value: sarama.ByteEncoder(body),
	}
	select {
	case p.producer.Input() <- msg:
	case <-ctx.Done():
	}
}

// Close flushes pending messages and stops the producer. Delivery errors
// reported during the flush are counted like any other.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	p.closeOnce.Do(func() {
		p.producer.AsyncClose()
		p.wg.Wait()
	})
	return nil
}
