package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careerhub/internal/adapters/http/middleware"
	"careerhub/internal/adapters/http/routes"
	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/adapters/storage"
	"careerhub/internal/config"
	"careerhub/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "careerhub/docs" // Swagger docs
)

// @title CareerHub API
// @version 1.0
// @description Career record, review and certificate issuance API

// @contact.name API Support
// @contact.email support@careerhub.example.com

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	if err := config.NewSeeder(db, cfg).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed data: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	documents, certificates, err := storage.Open(ctx, cfg.Storage)
	cancel()
	if err != nil {
		log.Fatalf("❌ Failed to open object storage: %v", err)
	}

	// Purge expired and revoked refresh tokens (03:00 daily by default)
	cronService := services.NewCronService(repositories.NewRefreshTokenRepository(db), cfg.Cron.TokenCleanup)
	if err := cronService.Start(); err != nil {
		log.Fatalf("❌ Failed to start cron service: %v", err)
	}
	defer cronService.Stop()

	app := fiber.New(fiber.Config{
		AppName:      "CareerHub API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
		// multipart overhead on top of the largest accepted file
		BodyLimit: int(cfg.Upload.MaxBytes) + 1<<20,
	})

	middleware.Setup(app, cfg)

	routes.Setup(app, db, cfg, routes.Stores{
		Documents:    documents,
		Certificates: certificates,
	})

	go gracefulShutdown(app)

	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
