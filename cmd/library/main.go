package main

import (
	"context"
	"fmt"
	"time"

	"grid-studio/internal/common/config"
	"grid-studio/internal/common/health"
	"grid-studio/internal/common/logging"
	"grid-studio/internal/common/middleware"
	"grid-studio/internal/grid/export"
	"grid-studio/internal/library/handlers"
	"grid-studio/internal/library/repository"
	"grid-studio/internal/library/service"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Library Service
// ============================================================

func main() {
	cfg := config.Load().PortOr("3002")
	log := logging.Component(logging.New(cfg.Environment, cfg.LogLevel), "library")

	dbPath := config.Getenv("LIBRARY_DB_PATH", "data/db/library.db")
	db, err := repository.OpenSQLite(dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", dbPath).Msg("open db")
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("init db")
	}

	idle, err := time.ParseDuration(config.Getenv("LIBRARY_SESSION_IDLE", "12h"))
	if err != nil {
		log.Fatal().Err(err).Msg("parse LIBRARY_SESSION_IDLE")
	}
	sessionManager := service.NewSessionManager(idle)
	if idle > 0 {
		go func() {
			for range time.Tick(idle) {
				if n := sessionManager.Sweep(); n > 0 {
					log.Debug().Int("sessions", n).Msg("expired sessions removed")
				}
			}
		}()
	}
	fileStorage := service.NewFileStorage(config.Getenv("LIBRARY_STORAGE", "data/library"))
	exporter := export.NewExporter(cfg.MaxCanvasSide, cfg.BatchWorkers, log)
	libraryHandler := handlers.NewLibraryHandler(repo, sessionManager, fileStorage, exporter, log)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Grid Library",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())

	// ============================================================
	// Health Check Routes
	// ============================================================

	health.Register(app, repo.Ping, func(context.Context) error {
		return fileStorage.Writable()
	})

	// ============================================================
	// Library Routes
	// ============================================================

	handlers.Register(app, libraryHandler)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Str("env", cfg.Environment).Str("db", dbPath).Msg("starting library")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
