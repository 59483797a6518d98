// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"majorexplorer/internal/delivery/api/middleware"
	"majorexplorer/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ProfileHandler    *handler.ProfileHandler
	ComparisonHandler *handler.ComparisonHandler
	CatalogHandler    *handler.CatalogHandler
	HealthHandler     *handler.HealthHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	profileHandler    *handler.ProfileHandler
	comparisonHandler *handler.ComparisonHandler
	catalogHandler    *handler.CatalogHandler
	healthHandler     *handler.HealthHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		profileHandler:    params.ProfileHandler,
		comparisonHandler: params.ComparisonHandler,
		catalogHandler:    params.CatalogHandler,
		healthHandler:     params.HealthHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.healthHandler.Root)
	e.GET("/health", r.healthHandler.Health)

	// Auth routes
	e.POST("/signup", r.authHandler.Signup)
	e.POST("/login", r.authHandler.Login)

	// Catalog routes are public
	e.GET("/majors", r.catalogHandler.ListMajors)
	e.GET("/interest-areas", r.catalogHandler.ListInterestAreas)
	e.GET("/search-interest-areas", r.catalogHandler.SearchInterestAreas)
	e.GET("/major-jobs/:major_id", r.catalogHandler.GetMajorJobs)

	ownAccount := r.authMiddleware.RequireAccountParam("user_id")

	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/:user_id", r.profileHandler.GetProfile, ownAccount)
		userGroup.PUT("/:user_id", r.profileHandler.UpdateProfile, ownAccount)
	}

	// The body's user_id is checked against the token by the handler.
	e.POST("/save-comparison", r.comparisonHandler.SaveComparison, r.authMiddleware.Authenticate)

	savedGroup := e.Group("/saved-comparisons")
	savedGroup.Use(r.authMiddleware.Authenticate)
	{
		savedGroup.GET("/:user_id", r.comparisonHandler.ListSavedComparisons, ownAccount)
		savedGroup.DELETE("/:user_id/:major_id", r.comparisonHandler.RemoveSavedComparison, ownAccount)
	}
}
