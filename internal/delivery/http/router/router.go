// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/BrayanOfficiel/juice-finder/internal/delivery/http/middleware"
	"github.com/BrayanOfficiel/juice-finder/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EstablishmentHandler *handler.EstablishmentHandler
	SyncHandler          *handler.SyncHandler
	UserHandler          *handler.UserHandler
	BookmarkHandler      *handler.BookmarkHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	establishmentHandler *handler.EstablishmentHandler
	syncHandler          *handler.SyncHandler
	userHandler          *handler.UserHandler
	bookmarkHandler      *handler.BookmarkHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		establishmentHandler: params.EstablishmentHandler,
		syncHandler:          params.SyncHandler,
		userHandler:          params.UserHandler,
		bookmarkHandler:      params.BookmarkHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Search and maintenance of the establishment directory. The collection
	// route carries both the search (GET) and the destructive reset (DELETE).
	restaurants := api.Group("/restaurants")
	{
		restaurants.GET("", r.establishmentHandler.Search)
		restaurants.DELETE("", r.syncHandler.Reset)
		restaurants.POST("/update", r.syncHandler.Update)
		restaurants.POST("/import", r.syncHandler.Import)
		restaurants.POST("/cleanup", r.syncHandler.Cleanup)
		restaurants.GET("/debug", r.syncHandler.Debug)
	}

	// Metadata lists feeding the filter widgets.
	api.GET("/regions", r.establishmentHandler.Regions)
	api.GET("/departments", r.establishmentHandler.Departments)
	api.GET("/cities", r.establishmentHandler.Cities)
	api.GET("/arrondissements", r.establishmentHandler.Arrondissements)
	api.GET("/locations", r.establishmentHandler.Locations)

	// Profiles and login.
	authGroup := api.Group("/auth")
	{
		authGroup.GET("/users", r.userHandler.List)
		authGroup.POST("/users", r.userHandler.Create)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Per-user lists require the X-User-Id header.
	bookmarks := api.Group("/bookmarks", r.authMiddleware.RequireUser)
	{
		bookmarks.GET("", r.bookmarkHandler.ListBookmarks)
		bookmarks.POST("", r.bookmarkHandler.AddBookmark)
		bookmarks.DELETE("/:id", r.bookmarkHandler.RemoveBookmark)
	}

	archived := api.Group("/archived", r.authMiddleware.RequireUser)
	{
		archived.GET("", r.bookmarkHandler.ListArchived)
		archived.POST("", r.bookmarkHandler.AddArchive)
		archived.DELETE("/:id", r.bookmarkHandler.RemoveArchive)
	}
}
