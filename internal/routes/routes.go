package routes

import (
	"time"

	"github.com/bloodit-app/bloodit-backend/internal/config"
	"github.com/bloodit-app/bloodit-backend/internal/handlers"
	"github.com/bloodit-app/bloodit-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	donorHandler *handlers.DonorHandler,
	donationHandler *handlers.DonationHandler,
	requestHandler *handlers.RequestHandler,
	healthHandler *handlers.HealthHandler,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to Bloodit!")
	})
	app.Get("/health", healthHandler.Check)

	// Auth — stricter rate limit: 10 req/min per IP
	auth := app.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Post("/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	users := app.Group("/users")
	users.Post("/", userHandler.Create)
	users.Get("/", middleware.JWTProtected(cfg), userHandler.List)
	users.Get("/:id", middleware.JWTProtected(cfg), userHandler.Get)

	donors := app.Group("/donors", middleware.JWTProtected(cfg))
	donors.Post("/", donorHandler.Create)
	donors.Get("/", donorHandler.List)
	donors.Get("/:id", donorHandler.Get)
	donors.Put("/:id", donorHandler.Update)

	donations := app.Group("/blood-donations", middleware.JWTProtected(cfg))
	donations.Post("/", donationHandler.Create)
	donations.Get("/", donationHandler.List)
	donations.Get("/:id", donationHandler.Get)

	requests := app.Group("/blood-requests", middleware.JWTProtected(cfg))
	requests.Post("/", requestHandler.Create)
	requests.Get("/", requestHandler.List)
	requests.Get("/:id", requestHandler.Get)
	requests.Put("/:id", requestHandler.Update)
}
