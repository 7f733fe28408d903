package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"solarmart/internal/config"
	"solarmart/internal/http/handlers"
	applog "solarmart/internal/log"
	"solarmart/internal/repos"
	"solarmart/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	deps := handlers.NewDeps(db, authSvc)

	// ---------- Public catalog ----------
	api := app.Group("/api/v1")
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Detail)
	api.Get("/categories", deps.ProductHandler.Categories)
	api.Get("/categories/:id/products", deps.ProductHandler.ByCategory)
	api.Get("/testimonials", deps.TestimonialHandler.List)
	api.Get("/news", deps.NewsHandler.List)
	api.Get("/news/:id", deps.NewsHandler.Detail)

	// ---------- Cart ----------
	api.Get("/cart/:userId", deps.CartHandler.View)
	api.Post("/cart/:userId/items", deps.CartHandler.Add)
	api.Put("/cart/:userId/items/:productId", deps.CartHandler.SetQuantity)
	api.Delete("/cart/:userId/items/:productId", deps.CartHandler.Remove)

	// ---------- Orders ----------
	api.Post("/orders", deps.OrderHandler.Place)
	api.Get("/orders", deps.OrderHandler.History)
	api.Get("/orders/:id", deps.OrderHandler.View)
	api.Put("/orders/:id", deps.OrderHandler.RecordPayment)
	api.Post("/orders/:id/retry-payment", deps.OrderHandler.RetryPayment)
	api.Post("/orders/:id/reorder", deps.OrderHandler.Reorder)

	// ---------- Auth (login throttled) ----------
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, try again later"})
		},
	}), authH.Login)
	app.Post("/logout", authH.Logout)
	app.Get("/me", handlers.RequireUser(authSvc), authH.Me)

	// ---------- Admin ----------
	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/orders", deps.AdminHandler.ListOrders)
	admin.Post("/products", deps.AdminHandler.CreateProduct)
	admin.Put("/products/:id", deps.AdminHandler.UpdateProduct)
	admin.Delete("/products/:id", deps.AdminHandler.DeleteProduct)
	admin.Post("/testimonials", deps.AdminHandler.CreateTestimonial)
	admin.Delete("/testimonials/:id", deps.AdminHandler.DeleteTestimonial)
	admin.Post("/news", deps.AdminHandler.CreateArticle)
	admin.Put("/news/:id", deps.AdminHandler.UpdateArticle)
	admin.Delete("/news/:id", deps.AdminHandler.DeleteArticle)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
