// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"scout/internal/delivery/http/middleware"
	"scout/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	SessionHandler   *handler.SessionHandler
	FavoritesHandler *handler.FavoritesHandler
	PlayerHandler    *handler.PlayerHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	sessionHandler   *handler.SessionHandler
	favoritesHandler *handler.FavoritesHandler
	playerHandler    *handler.PlayerHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		sessionHandler:   params.SessionHandler,
		favoritesHandler: params.FavoritesHandler,
		playerHandler:    params.PlayerHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// Session routes that require authentication
	sessionGroup := e.Group("/session")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.GET("/me", r.sessionHandler.Me)
		sessionGroup.PATCH("/profile", r.sessionHandler.UpdateProfile)
	}

	// Favorites routes, always through the session context
	favoritesGroup := e.Group("/favorites")
	favoritesGroup.Use(r.authMiddleware.Authenticate)
	{
		favoritesGroup.GET("", r.favoritesHandler.List)
		favoritesGroup.POST("/players/:id/toggle", r.favoritesHandler.TogglePlayer)
		favoritesGroup.POST("/players/:id/toggle-team", r.favoritesHandler.ToggleTeamForPlayer)
		favoritesGroup.POST("/teams/:id/toggle", r.favoritesHandler.ToggleTeam)
	}

	// Public directory routes
	playersGroup := e.Group("/players")
	{
		playersGroup.GET("", r.playerHandler.Search)
		playersGroup.GET("/top", r.playerHandler.Top)
		playersGroup.GET("/suggestions", r.playerHandler.Suggestions)
		playersGroup.GET("/:id", r.playerHandler.Get)
		playersGroup.GET("/:id/statistics", r.playerHandler.Statistics)
	}

	e.GET("/rankings/:type", r.playerHandler.Rankings)
}
