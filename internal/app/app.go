// Package app wires repositories, services and handlers into a Fiber app.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"podhub/internal/config"
	"podhub/internal/handlers"
	"podhub/internal/middleware"
	"podhub/internal/repositories"
	"podhub/internal/services"
	"podhub/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies are the externally constructed handles the server runs on.
type Dependencies struct {
	Config *config.Config
	DB     *gorm.DB
	Blobs  storage.BlobStore
	Events services.EventPublisher // optional
	Log    *zap.Logger
}

// NewServer builds the Fiber app with every route registered.
func NewServer(deps Dependencies) (*fiber.App, error) {
	cfg := deps.Config
	if cfg == nil || deps.DB == nil || deps.Blobs == nil {
		return nil, errors.New("config, database and blob store are required")
	}
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	tokens, err := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(deps.DB)
	showRepo := repositories.NewGORMShowRepository(deps.DB)
	episodeRepo := repositories.NewGORMEpisodeRepository(deps.DB)

	// --- Services ---
	gateway := storage.NewGateway(deps.Blobs)
	hasher := services.NewPasswordHasher(cfg.BcryptCost)
	authService := services.NewAuthService(userRepo, hasher, tokens, log)
	resolver := services.NewIdentityResolver(tokens, userRepo)
	showService := services.NewShowService(showRepo, deps.Events, log)
	episodeService := services.NewEpisodeService(episodeRepo, showRepo, gateway, deps.Events, log)
	searchService := services.NewSearchService(showRepo, episodeRepo)

	// --- Handlers ---
	validate := validator.New()
	authRequired := middleware.AuthRequired(resolver, log)

	app := fiber.New(fiber.Config{
		AppName:   "PodHub API",
		BodyLimit: cfg.MaxUploadBytes,
	})
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "PodHub API is running!"})
	})
	app.Get("/health", healthCheck(deps.DB))

	api := app.Group("/api")
	handlers.NewAuthHandler(authService, validate, log).RegisterRoutes(api, authRequired)
	handlers.NewShowHandler(showService, validate, log).RegisterRoutes(api, authRequired)
	handlers.NewEpisodeHandler(episodeService, validate, log).RegisterRoutes(api, authRequired)
	handlers.NewSearchHandler(searchService, log).RegisterRoutes(api)
	handlers.NewUploadHandler(gateway, log).RegisterRoutes(api)

	return app, nil
}

func healthCheck(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, code := "healthy", fiber.StatusOK
		database := "connected"

		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			err = sqlDB.PingContext(ctx)
			cancel()
		}
		if err != nil {
			status, code = "unhealthy", fiber.StatusServiceUnavailable
			database = fmt.Sprintf("unreachable: %v", err)
		}

		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"database": database,
			"time":     time.Now().Format(time.RFC3339),
		})
	}
}
