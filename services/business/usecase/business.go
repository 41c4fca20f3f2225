package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/mylink/internal/pkg/logger"
	"github.com/piresc/mylink/internal/pkg/models"
	nrpkg "github.com/piresc/mylink/internal/pkg/newrelic"
	"github.com/piresc/mylink/services/business"
)

// Event actions
const (
	actionCreated = "created"
	actionUpdated = "updated"
	actionDeleted = "deleted"
)

// ListBusinesses returns the owner's businesses
func (u *BusinessUC) ListBusinesses(ctx context.Context, ownerID uuid.UUID) ([]*models.Business, error) {
	return u.businessRepo.ListByOwner(ctx, ownerID)
}

// CreateBusiness creates a business with its links for ownerID
func (u *BusinessUC) CreateBusiness(ctx context.Context, ownerID uuid.UUID, input models.BusinessInput) (*models.Business, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "Business.Create", func() (*models.Business, error) {
		b := &models.Business{OwnerID: ownerID, Links: []models.Link{}}
		applyInput(b, input)

		if err := u.businessRepo.Create(ctx, b); err != nil {
			return nil, err
		}

		logger.InfoCtx(ctx, "Business created",
			logger.Int64("business_id", b.ID),
			logger.String("path", b.Path))
		u.publish(ctx, actionCreated, b)
		return b, nil
	})
}

// GetBusiness returns the business at path if ownerID owns it
func (u *BusinessUC) GetBusiness(ctx context.Context, ownerID uuid.UUID, path string) (*models.Business, error) {
	b, err := u.businessRepo.GetByPath(ctx, path)
	if err != nil {
		return nil, err
	}
	if b.OwnerID != ownerID {
		return nil, business.ErrBusinessNotFound
	}
	return b, nil
}

// UpdateBusiness applies input to the owner's business at path
func (u *BusinessUC) UpdateBusiness(ctx context.Context, ownerID uuid.UUID, path string, input models.BusinessInput) (*models.Business, error) {
	return nrpkg.WithSegmentAndReturn(ctx, "Business.Update", func() (*models.Business, error) {
		b, err := u.GetBusiness(ctx, ownerID, path)
		if err != nil {
			return nil, err
		}

		replaceLinks := applyInput(b, input)
		if err := u.businessRepo.Update(ctx, b, replaceLinks); err != nil {
			return nil, err
		}

		u.publish(ctx, actionUpdated, b)
		return b, nil
	})
}

// DeleteBusiness deletes the owner's business at path
func (u *BusinessUC) DeleteBusiness(ctx context.Context, ownerID uuid.UUID, path string) error {
	b, err := u.GetBusiness(ctx, ownerID, path)
	if err != nil {
		return err
	}
	if err := u.businessRepo.Delete(ctx, b.ID); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Business deleted",
		logger.Int64("business_id", b.ID),
		logger.String("path", b.Path))
	u.publish(ctx, actionDeleted, b)
	return nil
}

// GetPublicBusiness returns any business by path
func (u *BusinessUC) GetPublicBusiness(ctx context.Context, path string) (*models.Business, error) {
	return u.businessRepo.GetByPath(ctx, path)
}

// applyInput copies the provided fields onto b and reports whether links were provided
func applyInput(b *models.Business, input models.BusinessInput) bool {
	if input.Path != nil {
		b.Path = *input.Path
	}
	if input.Name != nil {
		b.Name = *input.Name
	}
	if input.Description != nil {
		b.Description = *input.Description
	}
	if input.Logo != nil {
		logo := *input.Logo
		if logo == "" {
			b.Logo = nil
		} else {
			b.Logo = &logo
		}
	}
	if input.Links == nil {
		return false
	}

	b.Links = make([]models.Link, 0, len(input.Links))
	for _, l := range input.Links {
		b.Links = append(b.Links, l.ToLink(b.ID))
	}
	return true
}

func (u *BusinessUC) publish(ctx context.Context, action string, b *models.Business) {
	event := models.BusinessEvent{
		BusinessID: b.ID,
		OwnerID:    b.OwnerID.String(),
		Path:       b.Path,
		Action:     action,
		OccurredAt: u.now(),
	}

	var err error
	switch action {
	case actionCreated:
		err = u.eventGW.PublishBusinessCreated(ctx, event)
	case actionUpdated:
		err = u.eventGW.PublishBusinessUpdated(ctx, event)
	case actionDeleted:
		err = u.eventGW.PublishBusinessDeleted(ctx, event)
	default:
		err = fmt.Errorf("unknown business action %q", action)
	}
	if err != nil {
		logger.WarnCtx(ctx, "Failed to publish business event",
			logger.String("action", action),
			logger.Err(err))
	}
}
