package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/piresc/mylink/internal/pkg/models"
	"github.com/piresc/mylink/services/business"
)

// settingsID is the primary key of the only settings row
const settingsID = 1

// ListMenuItems lists menu items ordered by location, order and id
func (r *SiteRepo) ListMenuItems(ctx context.Context, location string, activeOnly bool) ([]*models.MenuItem, error) {
	query := `
		SELECT id, location, title, path, icon, sort_order, is_active, is_external
		FROM menu_items
		WHERE ($1 = '' OR location = $1) AND (NOT $2 OR is_active)
		ORDER BY location, sort_order, id
	`
	items := []*models.MenuItem{}
	if err := r.db.SelectContext(ctx, &items, query, location, activeOnly); err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return items, nil
}

// CreateMenuItem inserts item and sets its id
func (r *SiteRepo) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (location, title, path, icon, sort_order, is_active, is_external)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		item.Location, item.Title, item.Path, item.Icon, item.Order, item.IsActive, item.IsExternal,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	return nil
}

// UpdateMenuItem overwrites the item with the same id
func (r *SiteRepo) UpdateMenuItem(ctx context.Context, item *models.MenuItem) error {
	query := `
		UPDATE menu_items
		SET location = $1, title = $2, path = $3, icon = $4, sort_order = $5, is_active = $6, is_external = $7
		WHERE id = $8
	`
	result, err := r.db.ExecContext(ctx, query,
		item.Location, item.Title, item.Path, item.Icon, item.Order, item.IsActive, item.IsExternal, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return business.ErrMenuItemNotFound
	}
	return nil
}

// DeleteMenuItem removes the item
func (r *SiteRepo) DeleteMenuItem(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return business.ErrMenuItemNotFound
	}
	return nil
}

// ObtainSettings returns the settings row, creating it with defaults on first use
func (r *SiteRepo) ObtainSettings(ctx context.Context) (*models.SiteSettings, error) {
	insert := `
		INSERT INTO site_settings (id, site_name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, insert, settingsID, models.DefaultSiteName); err != nil {
		return nil, fmt.Errorf("failed to create site settings: %w", err)
	}

	query := `
		SELECT id, site_name, site_description, contact_email, contact_telegram, analytics_code, maintenance_mode
		FROM site_settings
		WHERE id = $1
	`
	var settings models.SiteSettings
	if err := r.db.GetContext(ctx, &settings, query, settingsID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("site settings row missing after insert: %w", err)
		}
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings writes settings to the single row, whatever id it carries
func (r *SiteRepo) SaveSettings(ctx context.Context, settings *models.SiteSettings) error {
	settings.ID = settingsID

	query := `
		INSERT INTO site_settings (id, site_name, site_description, contact_email, contact_telegram, analytics_code, maintenance_mode)
		VALUES (:id, :site_name, :site_description, :contact_email, :contact_telegram, :analytics_code, :maintenance_mode)
		ON CONFLICT (id) DO UPDATE SET
			site_name = EXCLUDED.site_name,
			site_description = EXCLUDED.site_description,
			contact_email = EXCLUDED.contact_email,
			contact_telegram = EXCLUDED.contact_telegram,
			analytics_code = EXCLUDED.analytics_code,
			maintenance_mode = EXCLUDED.maintenance_mode
	`
	if _, err := r.db.NamedExecContext(ctx, query, settings); err != nil {
		return fmt.Errorf("failed to save site settings: %w", err)
	}
	return nil
}
