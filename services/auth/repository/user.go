package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/mylink/internal/pkg/models"
	"github.com/piresc/mylink/services/auth"
)

const userColumns = `id, phone_number, is_verified, is_staff, is_active, date_joined`

// ObtainOrCreateUser returns the user registered with phone, creating a verified user if none exists.
// Concurrent first logins for the same phone resolve to a single row.
func (r *AuthRepo) ObtainOrCreateUser(ctx context.Context, phone string) (*models.User, bool, error) {
	query := `
		INSERT INTO users (id, phone_number, is_verified, is_staff, is_active, date_joined)
		VALUES ($1, $2, TRUE, FALSE, TRUE, $3)
		ON CONFLICT (phone_number) DO NOTHING
		RETURNING ` + userColumns

	var user models.User
	err := r.db.GetContext(ctx, &user, query, uuid.New(), phone, time.Now().UTC())
	if err == nil {
		return &user, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	// The phone is already registered
	existing, err := r.getUserByField(ctx, "phone_number", phone)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// GetUserByID retrieves a user by id
func (r *AuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUserByField(ctx, "id", id)
}

// getUserByField is a helper function to get a user by a specific column
func (r *AuthRepo) getUserByField(ctx context.Context, field string, value interface{}) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, field)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
