package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/mylink/internal/pkg/models"
	"github.com/piresc/mylink/services/business"
)

const businessColumns = `id, owner_id, path, name, description, logo, created_at, updated_at`

// ListByOwner returns the owner's businesses, newest first, each with ordered links
func (r *BusinessRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE owner_id = $1 ORDER BY created_at DESC, id DESC`

	var businesses []*models.Business
	if err := r.db.SelectContext(ctx, &businesses, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	if len(businesses) == 0 {
		return []*models.Business{}, nil
	}

	ids := make([]int64, 0, len(businesses))
	byID := make(map[int64]*models.Business, len(businesses))
	for _, b := range businesses {
		b.Links = []models.Link{}
		ids = append(ids, b.ID)
		byID[b.ID] = b
	}

	linkQuery, args, err := sqlx.In(`
		SELECT id, business_id, title, url, icon_type, sort_order
		FROM links
		WHERE business_id IN (?)
		ORDER BY sort_order, id
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build links query: %w", err)
	}

	var links []models.Link
	if err := r.db.SelectContext(ctx, &links, r.db.Rebind(linkQuery), args...); err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	for _, l := range links {
		if b, ok := byID[l.BusinessID]; ok {
			b.Links = append(b.Links, l)
		}
	}

	return businesses, nil
}

// GetByPath returns the business at path with ordered links
func (r *BusinessRepo) GetByPath(ctx context.Context, path string) (*models.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE path = $1`

	var b models.Business
	if err := r.db.GetContext(ctx, &b, query, path); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, business.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	links, err := r.getLinks(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	b.Links = links
	return &b, nil
}

func (r *BusinessRepo) getLinks(ctx context.Context, businessID int64) ([]models.Link, error) {
	query := `
		SELECT id, business_id, title, url, icon_type, sort_order
		FROM links
		WHERE business_id = $1
		ORDER BY sort_order, id
	`
	links := []models.Link{}
	if err := r.db.SelectContext(ctx, &links, query, businessID); err != nil {
		return nil, fmt.Errorf("failed to get links: %w", err)
	}
	return links, nil
}

// Create inserts the business and its links in one transaction
func (r *BusinessRepo) Create(ctx context.Context, b *models.Business) error {
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	// Begin transaction
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO businesses (owner_id, path, name, description, logo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err = tx.QueryRowxContext(ctx, query, b.OwnerID, b.Path, b.Name, b.Description, b.Logo, b.CreatedAt, b.UpdatedAt).Scan(&b.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return business.ErrPathTaken
		}
		return fmt.Errorf("failed to insert business: %w", err)
	}

	if err := insertLinks(ctx, tx, b); err != nil {
		return err
	}

	// Commit transaction
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Update saves the business fields and bumps updated_at.
// With replaceLinks every existing link is deleted and b.Links inserted in the same transaction.
func (r *BusinessRepo) Update(ctx context.Context, b *models.Business, replaceLinks bool) error {
	b.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE businesses
		SET path = $1, name = $2, description = $3, logo = $4, updated_at = $5
		WHERE id = $6
	`
	result, err := tx.ExecContext(ctx, query, b.Path, b.Name, b.Description, b.Logo, b.UpdatedAt, b.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return business.ErrPathTaken
		}
		return fmt.Errorf("failed to update business: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return business.ErrBusinessNotFound
	}

	if replaceLinks {
		if _, err := tx.ExecContext(ctx, `DELETE FROM links WHERE business_id = $1`, b.ID); err != nil {
			return fmt.Errorf("failed to delete links: %w", err)
		}
		if err := insertLinks(ctx, tx, b); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Delete removes the business; its links go with it
func (r *BusinessRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete business: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return business.ErrBusinessNotFound
	}
	return nil
}

// insertLinks stores b.Links, filling in their ids
func insertLinks(ctx context.Context, tx *sqlx.Tx, b *models.Business) error {
	query := `
		INSERT INTO links (business_id, title, url, icon_type, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	for i := range b.Links {
		l := &b.Links[i]
		l.BusinessID = b.ID
		if err := tx.QueryRowxContext(ctx, query, l.BusinessID, l.Title, l.URL, l.IconType, l.Order).Scan(&l.ID); err != nil {
			return fmt.Errorf("failed to insert link: %w", err)
		}
	}
	return nil
}
