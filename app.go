package main

import (
	"context"
	"fmt"
	"time"

	"takeaway/internal/config"
	"takeaway/internal/handlers"
	"takeaway/internal/middleware"
	"takeaway/internal/repositories"
	"takeaway/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newApp wires repositories, services and handlers into a Fiber app.
// publisher may be nil.
func newApp(cfg *config.Config, db *gorm.DB, publisher services.EventPublisher) (*fiber.App, error) {
	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	restaurantRepo := repositories.NewGORMRestaurantRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	// --- Services ---
	productService := services.NewProductService(productRepo, publisher)
	restaurantService := services.NewRestaurantService(restaurantRepo, publisher)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)

	guard := middleware.Open()
	if cfg.AuthEnabled {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := authService.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return nil, fmt.Errorf("failed to prepare admin user: %w", err)
		}
		guard = middleware.AuthRequired(authService)
	}

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService)
	authHandler := handlers.NewAuthHandler(authService)

	app := fiber.New(fiber.Config{
		AppName:      "takeaway",
		ErrorHandler: handlers.ErrorHandler,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With",
	}))

	// --- API Routes ---
	api := app.Group("/api")
	if cfg.AuthEnabled {
		authHandler.RegisterRoutes(api)
	}
	productHandler.RegisterRoutes(api, guard)
	restaurantHandler.RegisterRoutes(api, guard)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app, nil
}
