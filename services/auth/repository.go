package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/mylink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/mylink/services/auth AuthRepo

// AuthRepo is the identity store
type AuthRepo interface {
	// ObtainOrCreateUser returns the user for phone, creating a verified one if absent.
	// created reports whether this call inserted the row.
	ObtainOrCreateUser(ctx context.Context, phone string) (user *models.User, created bool, err error)
	// ObtainOrCreateToken returns the user's session token, creating it once
	ObtainOrCreateToken(ctx context.Context, userID uuid.UUID) (string, error)
	GetUserByToken(ctx context.Context, key string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
