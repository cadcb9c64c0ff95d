package router // package router defines how HTTP routes are registered

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/ambrose/movie-catalog/internal/config"
	"github.com/ambrose/movie-catalog/internal/handler"
	"github.com/ambrose/movie-catalog/internal/middleware"
)

// RegisterRoutes registers the routes that need neither a session nor
// API middleware: the health check and the uploaded-image static path.
func RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/healthz", handler.Health)
	e.GET("/api/v1/health", handler.Health)
	// Uploaded cover images are served from the upload directory.
	e.Static("/static/images", cfg.UploadDir)
}

// RegisterAPI registers the JSON API under /api/v1. Rate limiting wraps
// the whole group; the response cache covers the public reads. Mutating
// endpoints require a session, and JSON bodies are enforced where the
// payload must be JSON.
func RegisterAPI(e *echo.Echo, cfg config.Config, rdb *redis.Client, a *handler.AuthHandler, m *handler.MovieHandler) {
	api := e.Group("/api/v1")
	api.Use(middleware.OptionalSession(cfg.SessionSecret))
	api.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	auth := api.Group("/auth")
	auth.POST("/register", a.Register, middleware.RequireJSON())
	auth.POST("/login", a.Login, middleware.RequireJSON())
	auth.POST("/logout", a.Logout, middleware.RequireSession(cfg.SessionSecret))

	cacheCfg := config.LoadCacheConfig()
	cache := middleware.NewRedisCache(cacheCfg, rdb)
	// A successful mutation purges every movie response cached under the
	// route prefix, so a deleted movie cannot replay as a cached 200.
	invalidate := middleware.NewCacheInvalidator(cacheCfg, rdb, "/api/v1/movies")
	session := middleware.RequireSession(cfg.SessionSecret)

	api.GET("/dashboard", m.Dashboard, session)

	movies := api.Group("/movies")
	movies.GET("", m.List, cache)
	movies.GET("/:id", m.Get, cache)
	movies.POST("", m.Create, session, invalidate)
	movies.PUT("/:id", m.Update, session, middleware.RequireJSON(), invalidate)
	movies.DELETE("/:id", m.Delete, session, invalidate)
}

// RegisterWeb registers the server-rendered pages. Pages behind a login
// use the redirecting session guard; public pages read the session
// opportunistically so templates can greet the user.
func RegisterWeb(e *echo.Echo, cfg config.Config, wa *handler.WebAuthHandler, wm *handler.WebMovieHandler) {
	optional := middleware.OptionalSession(cfg.SessionSecret)
	required := middleware.RequireSessionWeb(cfg.SessionSecret)

	e.GET("/", wm.Home, optional)
	e.GET("/details/:id", wm.Details, optional)
	e.GET("/catalog", wm.Catalog, optional)

	e.GET("/signup", wa.SignupPage)
	e.POST("/signup", wa.Signup)
	e.GET("/login", wa.LoginPage)
	e.POST("/login", wa.Login)
	e.GET("/logout", wa.Logout, required)

	e.POST("/catalog/genres", wm.AddGenre, required)

	e.GET("/dashboard", wm.Dashboard, required)
	e.GET("/add_movie", wm.AddMoviePage, required)
	e.POST("/add_movie", wm.AddMovie, required)
	e.GET("/edit/:id", wm.EditMoviePage, required)
	e.POST("/edit/:id", wm.EditMovie, required)
	e.POST("/delete/:id", wm.DeleteMovie, required)
}
