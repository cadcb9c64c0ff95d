package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/ambrose/movie-catalog/internal/config"
	"github.com/ambrose/movie-catalog/internal/database"
	"github.com/ambrose/movie-catalog/internal/handler"
	"github.com/ambrose/movie-catalog/internal/queue"
	"github.com/ambrose/movie-catalog/internal/repository"
	"github.com/ambrose/movie-catalog/internal/router"
	"github.com/ambrose/movie-catalog/internal/service"
	"github.com/ambrose/movie-catalog/internal/storage"
	"github.com/ambrose/movie-catalog/internal/utils"
)

func main() {
	// Load .env if present; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(database.Config{
		User:            cfg.DBUser,
		Pass:            cfg.DBPass,
		Host:            cfg.DBHost,
		Port:            cfg.DBPort,
		Name:            cfg.DBName,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
	})
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Init(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema init failed: %v", err)
	}
	if cfg.SeedData {
		sampleHash, err := utils.HashPassword("hello", cfg.BcryptCost)
		if err != nil {
			cancel()
			log.Fatalf("seed hash failed: %v", err)
		}
		if err := database.Seed(ctx, db, sampleHash); err != nil {
			cancel()
			log.Fatalf("seed failed: %v", err)
		}
	}
	cancel()

	images, err := newImageStore(cfg)
	if err != nil {
		log.Fatalf("image store init failed: %v", err)
	}

	userRepo := repository.NewUserRepo(db)
	movieRepo := repository.NewMovieRepo(db)
	lookupRepo := repository.NewLookupRepo(db)

	authSvc := service.NewAuthService(userRepo, cfg.BcryptCost)
	movieSvc := service.NewMovieService(movieRepo, images, queue.PublishMovieEvent)

	// The consumer writes the movie audit trail; it reconnects on its own
	// and never takes the server down.
	go func() {
		if err := queue.StartMovieConsumer(); err != nil {
			log.Printf("movie consumer stopped: %v", err)
		}
	}()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.HTTPErrorHandler = httpErrorHandler

	renderer, err := handler.NewTemplateRenderer("web/templates/*.html")
	if err != nil {
		log.Fatalf("template parsing failed: %v", err)
	}
	e.Renderer = renderer

	authAPI := handler.NewAuthHandler(cfg, authSvc)
	movieAPI := handler.NewMovieHandler(movieSvc)
	authWeb := handler.NewWebAuthHandler(cfg, authSvc)
	movieWeb := handler.NewWebMovieHandler(movieSvc, lookupRepo)

	router.RegisterRoutes(e, cfg)
	router.RegisterAPI(e, cfg, rdb, authAPI, movieAPI)
	router.RegisterWeb(e, cfg, authWeb, movieWeb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// newImageStore picks the S3-compatible store when an endpoint is
// configured and the local directory store otherwise.
func newImageStore(cfg config.Config) (storage.ImageStore, error) {
	if cfg.MinioEndpoint != "" {
		return storage.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey,
			cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
	}
	return storage.NewLocalStore(cfg.UploadDir)
}

// httpErrorHandler keeps unmatched routes and panics inside the uniform
// envelope for API paths; page paths fall back to Echo's default.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	status := http.StatusInternalServerError
	if errors.As(err, &he) {
		status = he.Code
	}

	var message, code string
	switch status {
	case http.StatusNotFound:
		message, code = "Resource not found", "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		message, code = "Method not allowed", "METHOD_NOT_ALLOWED"
	default:
		message, code = "An unexpected error occurred", "INTERNAL_ERROR"
	}

	_ = c.JSON(status, map[string]any{
		"status":     "error",
		"message":    message,
		"timestamp":  time.Now().Format(time.RFC3339),
		"error_code": code,
	})
}
