package events

import (
	"context"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/mylink/internal/pkg/logger"
)

// NSQPublisher publishes events to nsqd topics named after the subject
type NSQPublisher struct {
	producer *nsq.Producer
}

// NewNSQPublisher creates a producer and pings the daemon
func NewNSQPublisher(address string) (*NSQPublisher, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &NSQPublisher{producer: producer}, nil
}

// Publish sends the JSON encoded payload to the topic
func (p *NSQPublisher) Publish(ctx context.Context, subject string, payload interface{}) error {
	data, err := marshal(payload)
	if err != nil {
		return err
	}

	if err := p.producer.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.DebugCtx(ctx, "Published event", logger.String("subject", subject), logger.String("driver", DriverNSQ))
	return nil
}

// Close stops the producer
func (p *NSQPublisher) Close() {
	p.producer.Stop()
}
