package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/mylink/internal/pkg/logger"
	"github.com/piresc/mylink/internal/pkg/models"
	"github.com/piresc/mylink/internal/utils"
)

// Context keys set by TokenAuthMiddleware
const (
	ContextUser   = "user"
	ContextUserID = "user_id"
)

// ErrTokenNotFound is returned by a TokenResolver for unknown keys
var ErrTokenNotFound = errors.New("token not found")

// TokenResolver looks up the user owning a session token
type TokenResolver interface {
	GetUserByToken(ctx context.Context, key string) (*models.User, error)
}

// TokenAuthMiddleware authenticates "Authorization: Token <key>" headers.
// "Bearer <key>" is accepted as well.
func TokenAuthMiddleware(resolver TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authentication credentials were not provided.")
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || (!strings.EqualFold(parts[0], "Token") && !strings.EqualFold(parts[0], "Bearer")) {
				return utils.UnauthorizedResponse(c, "Invalid token header.")
			}

			user, err := resolver.GetUserByToken(c.Request().Context(), parts[1])
			if err != nil {
				if !errors.Is(err, ErrTokenNotFound) {
					logger.ErrorCtx(c.Request().Context(), "Failed to resolve token", logger.Err(err))
					return utils.InternalServerErrorResponse(c, "Failed to authenticate")
				}
				return utils.UnauthorizedResponse(c, "Invalid token.")
			}
			if !user.IsActive {
				return utils.UnauthorizedResponse(c, "User inactive or deleted.")
			}

			c.Set(ContextUser, user)
			c.Set(ContextUserID, user.ID.String())
			SetUserID(c, user.ID.String())

			return next(c)
		}
	}
}

// RequireStaff rejects authenticated users without the staff flag.
// Must run after TokenAuthMiddleware.
func RequireStaff() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "Authentication credentials were not provided.")
			}
			if !user.IsStaff {
				return utils.ForbiddenResponse(c, "You do not have permission to perform this action.")
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user set by TokenAuthMiddleware
func CurrentUser(c echo.Context) (*models.User, bool) {
	user, ok := c.Get(ContextUser).(*models.User)
	return user, ok && user != nil
}
