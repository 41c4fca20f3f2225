package repository

import (
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/mylink/internal/pkg/models"
)

// pgUniqueViolation is the SQLSTATE for unique constraint violations
const pgUniqueViolation = "23505"

// BusinessRepo implements business.BusinessRepo on PostgreSQL
type BusinessRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBusinessRepo creates a new business repository
func NewBusinessRepo(cfg *models.Config, db *sqlx.DB) *BusinessRepo {
	return &BusinessRepo{
		cfg: cfg,
		db:  db,
	}
}

// SiteRepo implements business.SiteRepo on PostgreSQL
type SiteRepo struct {
	db *sqlx.DB
}

// NewSiteRepo creates a new site repository
func NewSiteRepo(db *sqlx.DB) *SiteRepo {
	return &SiteRepo{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
