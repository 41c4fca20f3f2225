package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/mylink/internal/pkg/middleware"
	"github.com/piresc/mylink/services/business/handler/http"
)

// Handler registers the business, menu and settings endpoints
type Handler struct {
	businessHandler *http.BusinessHandler
	siteHandler     *http.SiteHandler
	resolver        middleware.TokenResolver
}

// NewHandler creates the business route handler
func NewHandler(
	businessHandler *http.BusinessHandler,
	siteHandler *http.SiteHandler,
	resolver middleware.TokenResolver,
) *Handler {
	return &Handler{
		businessHandler: businessHandler,
		siteHandler:     siteHandler,
		resolver:        resolver,
	}
}

// RegisterRoutes registers all business routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.TokenAuthMiddleware(h.resolver)

	// Public routes
	e.GET("/public/:path", h.businessHandler.Public)
	e.GET("/menu", h.siteHandler.PublicMenu)
	e.GET("/settings", h.siteHandler.GetSettings)

	// Owner routes
	businessGroup := e.Group("/businesses", auth)
	businessGroup.GET("", h.businessHandler.List)
	businessGroup.POST("", h.businessHandler.Create)
	businessGroup.GET("/:path", h.businessHandler.Get)
	businessGroup.PUT("/:path", h.businessHandler.Update)
	businessGroup.PATCH("/:path", h.businessHandler.Patch)
	businessGroup.DELETE("/:path", h.businessHandler.Delete)

	// Staff routes
	adminGroup := e.Group("/admin", auth, middleware.RequireStaff())
	adminGroup.GET("/menu", h.siteHandler.AdminMenu)
	adminGroup.POST("/menu", h.siteHandler.CreateMenuItem)
	adminGroup.PUT("/menu/:id", h.siteHandler.UpdateMenuItem)
	adminGroup.DELETE("/menu/:id", h.siteHandler.DeleteMenuItem)
	adminGroup.PUT("/settings", h.siteHandler.UpdateSettings)
}
