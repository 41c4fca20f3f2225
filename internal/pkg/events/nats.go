package events

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/mylink/internal/pkg/logger"
)

// NATSPublisher publishes events to NATS subjects
type NATSPublisher struct {
	conn *nats.Conn
}

// NewNATSPublisher connects to the NATS server
func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	return &NATSPublisher{conn: conn}, nil
}

// Publish sends the JSON encoded payload to the subject
func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload interface{}) error {
	data, err := marshal(payload)
	if err != nil {
		return err
	}

	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.DebugCtx(ctx, "Published event", logger.String("subject", subject), logger.String("driver", DriverNATS))
	return nil
}

// Close drains pending messages and closes the connection
func (p *NATSPublisher) Close() {
	if p.conn != nil {
		if err := p.conn.Drain(); err != nil {
			p.conn.Close()
		}
	}
}
