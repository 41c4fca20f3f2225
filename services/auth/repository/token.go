package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/mylink/internal/pkg/models"
	"github.com/piresc/mylink/internal/utils"
	"github.com/piresc/mylink/services/auth"
)

// tokenLength is the size of a token key in hex characters
const tokenLength = 40

// ObtainOrCreateToken returns the user's token, creating one on first use.
// A user has at most one token and it never rotates.
func (r *AuthRepo) ObtainOrCreateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	key, err := utils.GenerateRandomHex(tokenLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	query := `
		INSERT INTO auth_tokens (key, user_id, created)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING key
	`
	var stored string
	err = r.db.GetContext(ctx, &stored, query, key, userID, time.Now().UTC())
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("failed to create token: %w", err)
	}

	err = r.db.GetContext(ctx, &stored, `SELECT key FROM auth_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}
	return stored, nil
}

// GetUserByToken resolves a token key to its user
func (r *AuthRepo) GetUserByToken(ctx context.Context, key string) (*models.User, error) {
	query := `
		SELECT u.id, u.phone_number, u.is_verified, u.is_staff, u.is_active, u.date_joined
		FROM auth_tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.key = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by token: %w", err)
	}
	return &user, nil
}
