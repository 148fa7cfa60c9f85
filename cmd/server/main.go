package main

import (
	"log/slog"
	"os"

	"studyhive/internal/db"
	"studyhive/internal/logging"
	"studyhive/internal/middleware"
	"studyhive/internal/realtime"
	"studyhive/internal/router"
	"studyhive/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, reading env vars from system")
	}

	logging.Setup()

	// Database is mandatory; everything else degrades gracefully.
	db.Init()

	hub := realtime.NewHub()

	r := gin.Default()
	r.Use(middleware.Metrics())

	// Uploaded binaries are served statically; the generated filename
	// is the only access control.
	r.Static("/uploads", services.UploadDir())

	router.RegisterRoutes(r, hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("studyhive server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
