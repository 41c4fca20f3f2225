package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/mylink/internal/pkg/logger"
	"github.com/piresc/mylink/internal/pkg/models"
)

// Event drivers
const (
	DriverNone = "none"
	DriverNSQ  = "nsq"
	DriverNATS = "nats"
)

// Publisher publishes domain events to a message broker
type Publisher interface {
	Publish(ctx context.Context, subject string, payload interface{}) error
	Close()
}

// NewPublisher creates the publisher selected by cfg.Driver
func NewPublisher(cfg models.EventsConfig) (Publisher, error) {
	switch cfg.Driver {
	case "", DriverNone:
		return NopPublisher{}, nil
	case DriverNSQ:
		p, err := NewNSQPublisher(cfg.NSQAddress)
		if err != nil {
			return nil, err
		}
		return p, nil
	case DriverNATS:
		p, err := NewNATSPublisher(cfg.NATSURL)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown events driver %q", cfg.Driver)
	}
}

func marshal(payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}
	return data, nil
}

// NopPublisher drops every event
type NopPublisher struct{}

// Publish logs the subject at debug level and discards the payload
func (NopPublisher) Publish(ctx context.Context, subject string, payload interface{}) error {
	if _, err := marshal(payload); err != nil {
		return err
	}
	logger.DebugCtx(ctx, "Event dropped, no broker configured", logger.String("subject", subject))
	return nil
}

// Close is a no-op
func (NopPublisher) Close() {}
