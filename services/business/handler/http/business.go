package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/mylink/internal/pkg/logger"
	"github.com/piresc/mylink/internal/pkg/middleware"
	"github.com/piresc/mylink/internal/pkg/models"
	"github.com/piresc/mylink/internal/pkg/validator"
	"github.com/piresc/mylink/internal/utils"
	"github.com/piresc/mylink/services/business"
)

const (
	msgNotFound       = "Not found."
	msgPathTaken      = "business with this path already exists."
	msgInvalidPayload = "Invalid request payload"
)

// BusinessHandler handles business page requests
type BusinessHandler struct {
	businessUC business.BusinessUC
}

// NewBusinessHandler creates a new business handler
func NewBusinessHandler(businessUC business.BusinessUC) *BusinessHandler {
	return &BusinessHandler{
		businessUC: businessUC,
	}
}

// List returns the current user's businesses
func (h *BusinessHandler) List(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.businessUC.ListBusinesses(c.Request().Context(), user.ID)
	if err != nil {
		return h.businessError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// Create creates a business for the current user
func (h *BusinessHandler) Create(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	input, fieldErrors, err := h.bindInput(c, false)
	if err != nil {
		return utils.BadRequestResponse(c, msgInvalidPayload)
	}
	if len(fieldErrors) > 0 {
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	b, err := h.businessUC.CreateBusiness(c.Request().Context(), user.ID, input)
	if err != nil {
		return h.businessError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

// Get returns one of the current user's businesses
func (h *BusinessHandler) Get(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	path := c.Param("path")
	middleware.SetBusinessPath(c, path)

	b, err := h.businessUC.GetBusiness(c.Request().Context(), user.ID, path)
	if err != nil {
		return h.businessError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// Update handles PUT, which requires path and name
func (h *BusinessHandler) Update(c echo.Context) error {
	return h.update(c, false)
}

// Patch handles PATCH, which changes only the provided fields
func (h *BusinessHandler) Patch(c echo.Context) error {
	return h.update(c, true)
}

func (h *BusinessHandler) update(c echo.Context, partial bool) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	path := c.Param("path")
	middleware.SetBusinessPath(c, path)

	input, fieldErrors, err := h.bindInput(c, partial)
	if err != nil {
		return utils.BadRequestResponse(c, msgInvalidPayload)
	}
	if len(fieldErrors) > 0 {
		return utils.ValidationErrorResponse(c, fieldErrors)
	}

	b, err := h.businessUC.UpdateBusiness(c.Request().Context(), user.ID, path, input)
	if err != nil {
		return h.businessError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// Delete deletes one of the current user's businesses
func (h *BusinessHandler) Delete(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	path := c.Param("path")
	middleware.SetBusinessPath(c, path)

	if err := h.businessUC.DeleteBusiness(c.Request().Context(), user.ID, path); err != nil {
		return h.businessError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Public returns any business by path without authentication
func (h *BusinessHandler) Public(c echo.Context) error {
	path := c.Param("path")
	middleware.SetBusinessPath(c, path)

	b, err := h.businessUC.GetPublicBusiness(c.Request().Context(), path)
	if err != nil {
		return h.businessError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// bindInput binds a business body and collects its field errors
func (h *BusinessHandler) bindInput(c echo.Context, partial bool) (models.BusinessInput, map[string][]string, error) {
	var input models.BusinessInput
	if err := c.Bind(&input); err != nil {
		return input, nil, err
	}

	fieldErrors := input.RequiredErrors(partial)
	if err := c.Validate(&input); err != nil {
		for field, msgs := range validator.FieldErrors(err) {
			fieldErrors[field] = append(fieldErrors[field], msgs...)
		}
	}
	return input, fieldErrors, nil
}

func (h *BusinessHandler) businessError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, business.ErrBusinessNotFound):
		return utils.NotFoundResponse(c, msgNotFound)
	case errors.Is(err, business.ErrPathTaken):
		return utils.ValidationErrorResponse(c, map[string][]string{"path": {msgPathTaken}})
	}

	middleware.NoticeError(c, err)
	logger.ErrorCtx(c.Request().Context(), "Business request failed",
		logger.String("path", c.Path()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, "")
}
