package business

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/mylink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/mylink/services/business BusinessRepo,SiteRepo

// BusinessRepo stores businesses and links
type BusinessRepo interface {
	// ListByOwner returns the owner's businesses with their links loaded
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Business, error)
	GetByPath(ctx context.Context, path string) (*models.Business, error)
	// Create inserts the business and its links in one transaction
	Create(ctx context.Context, business *models.Business) error
	// Update saves the business fields, and its links too when replaceLinks is set
	Update(ctx context.Context, business *models.Business, replaceLinks bool) error
	Delete(ctx context.Context, id int64) error
}

// SiteRepo stores menu items and the settings row
type SiteRepo interface {
	ListMenuItems(ctx context.Context, location string, activeOnly bool) ([]*models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *models.MenuItem) error
	UpdateMenuItem(ctx context.Context, item *models.MenuItem) error
	DeleteMenuItem(ctx context.Context, id int64) error
	// ObtainSettings returns the settings row, creating it with defaults
	ObtainSettings(ctx context.Context) (*models.SiteSettings, error)
	SaveSettings(ctx context.Context, settings *models.SiteSettings) error
}
