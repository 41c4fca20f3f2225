package usecase

import (
	"context"

	"github.com/piresc/mylink/internal/pkg/models"
)

// ListMenuItems lists menu items for location, or for every location when it is empty
func (u *SiteUC) ListMenuItems(ctx context.Context, location string, activeOnly bool) ([]*models.MenuItem, error) {
	return u.siteRepo.ListMenuItems(ctx, location, activeOnly)
}

// CreateMenuItem creates a menu item with defaults applied
func (u *SiteUC) CreateMenuItem(ctx context.Context, input models.MenuItemInput) (*models.MenuItem, error) {
	item := input.ToMenuItem()
	if err := u.siteRepo.CreateMenuItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateMenuItem replaces the menu item with id
func (u *SiteUC) UpdateMenuItem(ctx context.Context, id int64, input models.MenuItemInput) (*models.MenuItem, error) {
	item := input.ToMenuItem()
	item.ID = id
	if err := u.siteRepo.UpdateMenuItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteMenuItem deletes the menu item with id
func (u *SiteUC) DeleteMenuItem(ctx context.Context, id int64) error {
	return u.siteRepo.DeleteMenuItem(ctx, id)
}

// GetSettings returns the site settings, creating them on first use
func (u *SiteUC) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	return u.siteRepo.ObtainSettings(ctx)
}

// UpdateSettings overwrites the site settings
func (u *SiteUC) UpdateSettings(ctx context.Context, input models.SiteSettingsInput) (*models.SiteSettings, error) {
	settings := &models.SiteSettings{
		SiteName:        input.SiteName,
		SiteDescription: input.SiteDescription,
		ContactEmail:    input.ContactEmail,
		ContactTelegram: input.ContactTelegram,
		AnalyticsCode:   input.AnalyticsCode,
		MaintenanceMode: input.MaintenanceMode,
	}
	if err := u.siteRepo.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
