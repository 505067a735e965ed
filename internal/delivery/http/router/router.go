// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"path/filepath"

	"marquee/config"
	"marquee/internal/delivery/http/middleware"
	"marquee/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config          *config.Config
	AuthHandler     *handler.AuthHandler
	FavoriteHandler *handler.FavoriteHandler
	MovieHandler    *handler.MovieHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	staticRoot      string
	authHandler     *handler.AuthHandler
	favoriteHandler *handler.FavoriteHandler
	movieHandler    *handler.MovieHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		staticRoot:      params.Config.HTTP.StaticRootOrDefault(),
		authHandler:     params.AuthHandler,
		favoriteHandler: params.FavoriteHandler,
		movieHandler:    params.MovieHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes (status is deliberately unguarded; it answers for everyone)
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/status", r.authHandler.Status)
	}

	// Movie metadata proxy routes (unprotected)
	e.GET("/api/movies/now_playing", r.movieHandler.NowPlaying)
	e.GET("/api/movies/popular", r.movieHandler.Popular)
	e.GET("/api/search", r.movieHandler.Search)
	e.GET("/api/movie/:id", r.movieHandler.Details)

	// Favorites routes require a live session
	favoritesGroup := e.Group("/api/favorites")
	favoritesGroup.Use(r.authMiddleware.Authenticate)
	{
		favoritesGroup.GET("", r.favoriteHandler.List)
		favoritesGroup.POST("", r.favoriteHandler.Add)
		favoritesGroup.DELETE("/:movieId", r.favoriteHandler.Remove)
	}

	// Browser pages that only make sense with a session redirect to the
	// login page instead of answering with JSON.
	e.GET("/favorites.html", func(c echo.Context) error {
		return c.File(filepath.Join(r.staticRoot, "favorites.html"))
	}, r.authMiddleware.AuthenticatePage)
}
