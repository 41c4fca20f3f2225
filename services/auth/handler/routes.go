package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/mylink/internal/pkg/cache"
	"github.com/piresc/mylink/internal/pkg/constants"
	"github.com/piresc/mylink/internal/pkg/middleware"
	"github.com/piresc/mylink/internal/pkg/models"
	"github.com/piresc/mylink/services/auth/handler/http"
)

// Handler registers the auth endpoints
type Handler struct {
	authHandler *http.AuthHandler
	resolver    middleware.TokenResolver
	store       cache.Store
	cfg         *models.Config
}

// NewHandler creates the auth route handler
func NewHandler(
	authHandler *http.AuthHandler,
	resolver middleware.TokenResolver,
	store cache.Store,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		resolver:    resolver,
		store:       store,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the auth routes with their per-address throttles
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	otpLimit := h.cfg.RateLimit.OTPPerHour
	if otpLimit <= 0 {
		otpLimit = 10
	}
	loginLimit := h.cfg.RateLimit.LoginPerHour
	if loginLimit <= 0 {
		loginLimit = 20
	}

	authGroup := e.Group("/auth")
	authGroup.POST("/otp", h.authHandler.RequestOTP,
		middleware.IPRateLimiter(h.store, "otp", otpLimit, constants.RateLimitWindow))
	authGroup.POST("/login", h.authHandler.Login,
		middleware.IPRateLimiter(h.store, "login", loginLimit, constants.RateLimitWindow))
	authGroup.GET("/me", h.authHandler.Me, middleware.TokenAuthMiddleware(h.resolver))
}
