package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"movie-catalog-service/internal/config"
	"movie-catalog-service/internal/database"
	"movie-catalog-service/internal/handler"
	"movie-catalog-service/internal/middleware"
	"movie-catalog-service/internal/service"
	"movie-catalog-service/internal/store"
)

func main() {
	// Structured logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Seed the in-memory catalog (non-fatal if the file is missing)
	seed, err := store.LoadSeed(cfg.SeedFile)
	if err != nil {
		slog.Warn("seed file unavailable, starting with an empty catalog", "file", cfg.SeedFile, "error", err)
	}
	st := store.NewMovieStore(seed)
	slog.Info("catalog seeded", "movies", st.Len())

	// Connect to Redis (non-fatal if unavailable)
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, running without cache", "error", err)
	}

	// Initialize layers
	gate := middleware.NewCORSGate(cfg.AcceptedOrigins)
	svc := service.NewMovieService(st, rdb)
	h := handler.NewMovieHandler(svc, gate)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Movie Catalog Service",
		ServerHeader: "Movie-Catalog",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("unhandled error", "error", err, "status", code)
			return c.Status(code).JSON(handler.ErrorResponse{Error: err.Error()})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())

	// Routes
	app.Get("/movies", h.ListMovies)
	app.Get("/movies/:id", h.GetMovie)
	app.Post("/movies", h.CreateMovie)
	app.Patch("/movies/:id", h.UpdateMovie)
	app.Delete("/movies/:id", h.DeleteMovie)
	app.Options("/movies/:id", h.Preflight)

	// Catch-all for unmatched routes
	app.Use(h.NotFound)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		slog.Info("shutting down movie catalog service...")
		_ = app.Shutdown()
	}()

	// Start server
	addr := ":" + cfg.Port
	slog.Info("starting movie catalog service", "addr", addr)
	if err := app.Listen(addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
