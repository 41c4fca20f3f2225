package auth

import (
	"context"

	"github.com/piresc/mylink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/mylink/services/auth AuthUC

// AuthUC is the phone verification flow: issue a code by SMS, then trade it for a session token
type AuthUC interface {
	RequestCode(ctx context.Context, phone string) error
	VerifyCode(ctx context.Context, phone, code string) (*models.LoginResponse, error)

	// GetUserByToken resolves a session token for the auth middleware
	GetUserByToken(ctx context.Context, key string) (*models.User, error)
}
