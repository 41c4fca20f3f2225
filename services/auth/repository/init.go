package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/mylink/internal/pkg/models"
)

// AuthRepo implements auth.AuthRepo on PostgreSQL
type AuthRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAuthRepo creates a new auth repository
func NewAuthRepo(cfg *models.Config, db *sqlx.DB) *AuthRepo {
	return &AuthRepo{
		cfg: cfg,
		db:  db,
	}
}
