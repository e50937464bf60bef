package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"              // Loads .env files into the environment
	"github.com/labstack/echo/v4"           // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo request logging and recovery

	"github.com/stagebook/stagebook/internal/config"               // Internal config loader
	"github.com/stagebook/stagebook/internal/database"             // Database pool and migrations
	"github.com/stagebook/stagebook/internal/database/migrations"  // Embedded schema migrations
	"github.com/stagebook/stagebook/internal/handler"              // HTTP handlers
	"github.com/stagebook/stagebook/internal/repository"           // Data access layer
	"github.com/stagebook/stagebook/internal/router"               // Route registration
	"github.com/stagebook/stagebook/internal/web"                  // Template renderer and flash helpers
)

func main() {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := database.ApplyMigrations(db, migrations.FS); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.Use(echomw.Logger())  // Request logging
	e.Use(echomw.Recover()) // Panics become rendered 500 pages
	e.Renderer = web.NewRenderer()
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	venues := repository.NewVenueRepo(db)
	artists := repository.NewArtistRepo(db)
	shows := repository.NewShowRepo(db)

	vh := &handler.VenueHandler{Venues: venues, Shows: shows}
	ah := &handler.ArtistHandler{Artists: artists, Shows: shows}
	sh := &handler.ShowHandler{Shows: shows}
	router.Register(e, vh, ah, sh) // Register application routes

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
