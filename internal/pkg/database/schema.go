package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is applied in order on startup; every statement is idempotent
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		phone_number VARCHAR(15) NOT NULL UNIQUE,
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		is_staff BOOLEAN NOT NULL DEFAULT FALSE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		date_joined TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS auth_tokens (
		key VARCHAR(40) PRIMARY KEY,
		user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		created TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS businesses (
		id BIGSERIAL PRIMARY KEY,
		owner_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		path VARCHAR(50) NOT NULL UNIQUE,
		name VARCHAR(100) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		logo VARCHAR(255),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS businesses_owner_id_idx ON businesses(owner_id)`,
	`CREATE TABLE IF NOT EXISTS links (
		id BIGSERIAL PRIMARY KEY,
		business_id BIGINT NOT NULL REFERENCES businesses(id) ON DELETE CASCADE,
		title VARCHAR(100) NOT NULL,
		url VARCHAR(500) NOT NULL,
		icon_type VARCHAR(20) NOT NULL DEFAULT 'website',
		sort_order INTEGER NOT NULL DEFAULT 0 CHECK (sort_order >= 0)
	)`,
	`CREATE INDEX IF NOT EXISTS links_business_id_idx ON links(business_id, sort_order)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id BIGSERIAL PRIMARY KEY,
		location VARCHAR(20) NOT NULL DEFAULT 'navbar',
		title VARCHAR(100) NOT NULL,
		path VARCHAR(200) NOT NULL,
		icon VARCHAR(50) NOT NULL DEFAULT '',
		sort_order INTEGER NOT NULL DEFAULT 0 CHECK (sort_order >= 0),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		is_external BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS site_settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		site_name VARCHAR(100) NOT NULL DEFAULT 'MyLink.asia',
		site_description TEXT NOT NULL DEFAULT '',
		contact_email VARCHAR(254) NOT NULL DEFAULT '',
		contact_telegram VARCHAR(100) NOT NULL DEFAULT '',
		analytics_code TEXT NOT NULL DEFAULT '',
		maintenance_mode BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}

// Migrate creates the tables used by the application
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %d: %w", i, err)
		}
	}
	return nil
}
