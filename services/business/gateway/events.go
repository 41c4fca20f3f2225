package gateway

import (
	"context"

	"github.com/piresc/mylink/internal/pkg/constants"
	"github.com/piresc/mylink/internal/pkg/events"
	"github.com/piresc/mylink/internal/pkg/models"
)

// EventGW publishes business events
type EventGW struct {
	publisher events.Publisher
}

// NewEventGW creates the business event gateway
func NewEventGW(publisher events.Publisher) *EventGW {
	return &EventGW{publisher: publisher}
}

// PublishBusinessCreated publishes a business.created event
func (g *EventGW) PublishBusinessCreated(ctx context.Context, event models.BusinessEvent) error {
	return g.publisher.Publish(ctx, constants.SubjectBusinessCreated, event)
}

// PublishBusinessUpdated publishes a business.updated event
func (g *EventGW) PublishBusinessUpdated(ctx context.Context, event models.BusinessEvent) error {
	return g.publisher.Publish(ctx, constants.SubjectBusinessUpdated, event)
}

// PublishBusinessDeleted publishes a business.deleted event
func (g *EventGW) PublishBusinessDeleted(ctx context.Context, event models.BusinessEvent) error {
	return g.publisher.Publish(ctx, constants.SubjectBusinessDeleted, event)
}
