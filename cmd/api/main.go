package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/duetly/backend/config"
	"github.com/duetly/backend/internal/database"
	"github.com/duetly/backend/internal/router"
	"github.com/duetly/backend/internal/server"
	"github.com/duetly/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	healthDB, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer healthDB.Close()

	db, err := database.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	deps := router.Deps{
		DB:           db,
		HealthDB:     healthDB,
		EmailService: service.NewEmailService(),
	}

	// Redis is optional; rate limiting and caching degrade gracefully.
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Redis unavailable, continuing without cache: %v", err)
	} else {
		deps.Redis = redisClient
	}

	// S3 is optional in development; without it photo uploads are disabled.
	if s3Cfg, err := config.NewS3Config(context.Background()); err != nil {
		log.Printf("S3 unavailable, photo uploads disabled: %v", err)
	} else {
		deps.ImageService = service.NewImageService(s3Cfg)
	}

	srv := server.New(cfg, deps)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(cfg.ServerPort)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
