package auth

import (
	"context"

	"github.com/piresc/mylink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/mylink/services/auth SMSGW,EventGW

// SMSGW is the SMS provider
type SMSGW interface {
	// GetToken returns a provider credential, ok=false when none can be obtained
	GetToken(ctx context.Context) (token string, ok bool)
	// SendMessage reports whether the provider accepted the message
	SendMessage(ctx context.Context, phone, text string) bool
}

// EventGW publishes auth events
type EventGW interface {
	PublishOTPRequested(ctx context.Context, event models.OTPRequestedEvent) error
	PublishUserRegistered(ctx context.Context, event models.UserRegisteredEvent) error
}
