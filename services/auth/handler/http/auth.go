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
	"github.com/piresc/mylink/services/auth"
)

// User-facing messages of the code flow
const (
	msgCodeSent        = "Tasdiqlash kodi yuborildi"
	msgRateLimited     = "Too many requests. Please try again in 1 hour."
	msgCooldown        = "Please wait 60 seconds before requesting a new code."
	msgLockedOut       = "Too many failed attempts. Please try again in 30 minutes."
	msgDeliveryFailed  = "Failed to send SMS"
	msgInvalidCode     = "Invalid or expired code"
	msgInvalidPayload  = "Invalid request payload"
	msgInternalFailure = "Internal server error"
)

// AuthHandler handles the phone login endpoints
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// RequestOTP handles POST /auth/otp
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req models.OTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, msgInvalidPayload)
	}
	if err := c.Validate(&req); err != nil {
		return utils.ValidationErrorResponse(c, validator.FieldErrors(err))
	}

	err := h.authUC.RequestCode(c.Request().Context(), req.PhoneNumber)
	if err != nil {
		return h.codeFlowError(c, err)
	}

	return c.JSON(http.StatusOK, models.MessageResponse{Message: msgCodeSent})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, msgInvalidPayload)
	}
	if err := c.Validate(&req); err != nil {
		return utils.ValidationErrorResponse(c, validator.FieldErrors(err))
	}

	resp, err := h.authUC.VerifyCode(c.Request().Context(), req.PhoneNumber, req.Code)
	if err != nil {
		return h.codeFlowError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	return c.JSON(http.StatusOK, user)
}

// codeFlowError maps code flow errors onto responses
func (h *AuthHandler) codeFlowError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, auth.ErrRateLimited):
		return utils.TooManyRequestsResponse(c, msgRateLimited)
	case errors.Is(err, auth.ErrCooldown):
		return utils.TooManyRequestsResponse(c, msgCooldown)
	case errors.Is(err, auth.ErrLockedOut):
		return utils.TooManyRequestsResponse(c, msgLockedOut)
	case errors.Is(err, auth.ErrInvalidCode):
		return utils.BadRequestResponse(c, msgInvalidCode)
	case errors.Is(err, auth.ErrDeliveryFailed):
		return utils.InternalServerErrorResponse(c, msgDeliveryFailed)
	}

	logger.ErrorCtx(c.Request().Context(), "Code flow failed",
		logger.String("path", c.Path()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, msgInternalFailure)
}
