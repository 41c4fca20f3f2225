package usecase

import (
	"time"

	"github.com/piresc/mylink/internal/pkg/models"
	"github.com/piresc/mylink/services/business"
)

// BusinessUC implements business.BusinessUC
type BusinessUC struct {
	businessRepo business.BusinessRepo
	eventGW      business.EventGW
	cfg          *models.Config
	now          func() time.Time
}

// NewBusinessUC creates a new business usecase instance
func NewBusinessUC(businessRepo business.BusinessRepo, eventGW business.EventGW, cfg *models.Config) *BusinessUC {
	return &BusinessUC{
		businessRepo: businessRepo,
		eventGW:      eventGW,
		cfg:          cfg,
		now:          time.Now,
	}
}

// SiteUC implements business.SiteUC
type SiteUC struct {
	siteRepo business.SiteRepo
}

// NewSiteUC creates a new site usecase instance
func NewSiteUC(siteRepo business.SiteRepo) *SiteUC {
	return &SiteUC{siteRepo: siteRepo}
}
