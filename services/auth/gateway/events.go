package gateway

import (
	"context"

	"github.com/piresc/mylink/internal/pkg/constants"
	"github.com/piresc/mylink/internal/pkg/models"
)

// PublishOTPRequested publishes an otp.requested event
func (g *EventGW) PublishOTPRequested(ctx context.Context, event models.OTPRequestedEvent) error {
	return g.publisher.Publish(ctx, constants.SubjectOTPRequested, event)
}

// PublishUserRegistered publishes a user.registered event
func (g *EventGW) PublishUserRegistered(ctx context.Context, event models.UserRegisteredEvent) error {
	return g.publisher.Publish(ctx, constants.SubjectUserRegistered, event)
}
