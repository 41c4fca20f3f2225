package business

import (
	"context"

	"github.com/piresc/mylink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/mylink/services/business EventGW

// EventGW publishes business lifecycle events
type EventGW interface {
	PublishBusinessCreated(ctx context.Context, event models.BusinessEvent) error
	PublishBusinessUpdated(ctx context.Context, event models.BusinessEvent) error
	PublishBusinessDeleted(ctx context.Context, event models.BusinessEvent) error
}
