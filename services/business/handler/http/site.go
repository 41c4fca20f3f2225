package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/mylink/internal/pkg/logger"
	"github.com/piresc/mylink/internal/pkg/models"
	"github.com/piresc/mylink/internal/pkg/validator"
	"github.com/piresc/mylink/internal/utils"
	"github.com/piresc/mylink/services/business"
)

// SiteHandler handles menu and site settings requests
type SiteHandler struct {
	siteUC business.SiteUC
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(siteUC business.SiteUC) *SiteHandler {
	return &SiteHandler{
		siteUC: siteUC,
	}
}

// PublicMenu lists active menu items, filtered by ?location=
func (h *SiteHandler) PublicMenu(c echo.Context) error {
	return h.listMenu(c, true)
}

// AdminMenu lists every menu item, inactive ones included
func (h *SiteHandler) AdminMenu(c echo.Context) error {
	return h.listMenu(c, false)
}

func (h *SiteHandler) listMenu(c echo.Context, activeOnly bool) error {
	items, err := h.siteUC.ListMenuItems(c.Request().Context(), c.QueryParam("location"), activeOnly)
	if err != nil {
		return h.siteError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// CreateMenuItem creates a menu item
func (h *SiteHandler) CreateMenuItem(c echo.Context) error {
	var input models.MenuItemInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, msgInvalidPayload)
	}
	if err := c.Validate(&input); err != nil {
		return utils.ValidationErrorResponse(c, validator.FieldErrors(err))
	}

	item, err := h.siteUC.CreateMenuItem(c.Request().Context(), input)
	if err != nil {
		return h.siteError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem replaces a menu item
func (h *SiteHandler) UpdateMenuItem(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.NotFoundResponse(c, msgNotFound)
	}

	var input models.MenuItemInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, msgInvalidPayload)
	}
	if err := c.Validate(&input); err != nil {
		return utils.ValidationErrorResponse(c, validator.FieldErrors(err))
	}

	item, err := h.siteUC.UpdateMenuItem(c.Request().Context(), id, input)
	if err != nil {
		return h.siteError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteMenuItem deletes a menu item
func (h *SiteHandler) DeleteMenuItem(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.NotFoundResponse(c, msgNotFound)
	}

	if err := h.siteUC.DeleteMenuItem(c.Request().Context(), id); err != nil {
		return h.siteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetSettings returns the site settings
func (h *SiteHandler) GetSettings(c echo.Context) error {
	settings, err := h.siteUC.GetSettings(c.Request().Context())
	if err != nil {
		return h.siteError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings overwrites the site settings
func (h *SiteHandler) UpdateSettings(c echo.Context) error {
	var input models.SiteSettingsInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, msgInvalidPayload)
	}
	if err := c.Validate(&input); err != nil {
		return utils.ValidationErrorResponse(c, validator.FieldErrors(err))
	}

	settings, err := h.siteUC.UpdateSettings(c.Request().Context(), input)
	if err != nil {
		return h.siteError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *SiteHandler) siteError(c echo.Context, err error) error {
	if errors.Is(err, business.ErrMenuItemNotFound) {
		return utils.NotFoundResponse(c, msgNotFound)
	}

	logger.ErrorCtx(c.Request().Context(), "Site request failed",
		logger.String("path", c.Path()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, "")
}
