package business

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/mylink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/mylink/services/business BusinessUC,SiteUC

// BusinessUC manages business pages and their links
type BusinessUC interface {
	ListBusinesses(ctx context.Context, ownerID uuid.UUID) ([]*models.Business, error)
	CreateBusiness(ctx context.Context, ownerID uuid.UUID, input models.BusinessInput) (*models.Business, error)
	// GetBusiness returns ErrBusinessNotFound for pages owned by someone else
	GetBusiness(ctx context.Context, ownerID uuid.UUID, path string) (*models.Business, error)
	// UpdateBusiness applies the provided fields. A non-nil input.Links replaces all links.
	UpdateBusiness(ctx context.Context, ownerID uuid.UUID, path string, input models.BusinessInput) (*models.Business, error)
	DeleteBusiness(ctx context.Context, ownerID uuid.UUID, path string) error
	GetPublicBusiness(ctx context.Context, path string) (*models.Business, error)
}

// SiteUC manages navigation menus and the site settings
type SiteUC interface {
	// ListMenuItems lists items, optionally filtered by location
	ListMenuItems(ctx context.Context, location string, activeOnly bool) ([]*models.MenuItem, error)
	CreateMenuItem(ctx context.Context, input models.MenuItemInput) (*models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id int64, input models.MenuItemInput) (*models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int64) error
	GetSettings(ctx context.Context) (*models.SiteSettings, error)
	UpdateSettings(ctx context.Context, input models.SiteSettingsInput) (*models.SiteSettings, error)
}
