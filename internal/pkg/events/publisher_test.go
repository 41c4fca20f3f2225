package events

import (
	"context"
	"testing"

	"github.com/piresc/mylink/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher(t *testing.T) {
	t.Run("none driver returns nop publisher", func(t *testing.T) {
		p, err := NewPublisher(models.EventsConfig{Driver: DriverNone})
		require.NoError(t, err)
		assert.IsType(t, NopPublisher{}, p)
	})

	t.Run("empty driver returns nop publisher", func(t *testing.T) {
		p, err := NewPublisher(models.EventsConfig{})
		require.NoError(t, err)
		assert.IsType(t, NopPublisher{}, p)
	})

	t.Run("unknown driver", func(t *testing.T) {
		p, err := NewPublisher(models.EventsConfig{Driver: "kafka"})
		assert.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "unknown events driver")
	})

	t.Run("nats with invalid address", func(t *testing.T) {
		p, err := NewPublisher(models.EventsConfig{Driver: DriverNATS, NATSURL: "invalid://address"})
		assert.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "failed to connect to NATS server")
	})

	t.Run("nsq with unreachable daemon", func(t *testing.T) {
		p, err := NewPublisher(models.EventsConfig{Driver: DriverNSQ, NSQAddress: "127.0.0.1:1"})
		assert.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "failed to ping NSQ daemon")
	})
}

func TestNopPublisher_Publish(t *testing.T) {
	p := NopPublisher{}
	defer p.Close()

	err := p.Publish(context.Background(), "business.created", models.BusinessEvent{Path: "mybrand"})
	assert.NoError(t, err)

	err = p.Publish(context.Background(), "broken", make(chan int))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal message")
}
