package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kindredchat/kindred/kindred"
	appconfig "github.com/kindredchat/kindred/kindred/config"
	"github.com/kindredchat/kindred/kindred/database"
	"github.com/kindredchat/kindred/kindred/database/repositories"
	"github.com/kindredchat/kindred/kindred/favorability"
	"github.com/kindredchat/kindred/kindred/handlers"
	"github.com/kindredchat/kindred/kindred/logger"
	"github.com/kindredchat/kindred/kindred/services"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	customHandler := logger.NewHandler()
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting Kindred API",
		slog.String("version", version),
		slog.String("commit", commit))

	shouldSyncSchema := flag.Bool("sync-schema", false, "create database tables and indexes on startup")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := kindred.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to read config", slog.Any("error", err))
		os.Exit(-1)
	}

	engineCfg := favorability.NewDefaultConfig()
	if err := favorability.ValidateStageTable(engineCfg.MaxScore); err != nil {
		slog.Error("Stage table validation failed", slog.Any("error", err))
		os.Exit(-1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DB)
	cancel()
	if err != nil {
		slog.Error("Failed to connect to database", slog.Any("error", err))
		os.Exit(-1)
	}

	if *shouldSyncSchema {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := db.InitializeSchema(ctx)
		cancel()
		if err != nil {
			slog.Error("Failed to initialize schema", slog.Any("error", err))
			os.Exit(-1)
		}
		slog.Info("Database schema initialized", slog.String("type", "db"))
	}

	relationRepo := repositories.NewRelationRepository(db.BunDB())
	eventRepo := repositories.NewEventLogRepository(db.BunDB())
	memoryRepo := repositories.NewMemoryRepository(db.BunDB())
	achievementRepo := repositories.NewAchievementRepository(db.BunDB())

	engine := favorability.NewService(engineCfg, relationRepo, eventRepo, memoryRepo, achievementRepo)
	replyService := services.NewReplyService(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
	messageService := services.NewMessageService(relationRepo, engine, replyService)
	memorySearch := services.NewMemorySearchService(memoryRepo)

	app := &handlers.App{
		DB:           db,
		Engine:       engine,
		Messages:     messageService,
		MemorySearch: memorySearch,
		Version:      version,
		Commit:       commit,
	}

	server := fiber.New(fiber.Config{
		AppName:      "Kindred API",
		ServerHeader: "Kindred",
		ReadTimeout:  appconfig.RequestTimeout,
		BodyLimit:    appconfig.MaxRequestSize,
		ErrorHandler: handlers.ErrorHandler,
	})

	server.Use(recover.New())
	server.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	server.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID",
	}))
	server.Use(handlers.RequestID())
	server.Use(handlers.RequestLogger())

	setupRoutes(server, app)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := server.Listen(cfg.Server.Addr()); err != nil {
			slog.Error("Failed to start server", slog.Any("error", err))
			c <- syscall.SIGTERM
		}
	}()
	slog.Info("Kindred API is now running", slog.String("address", cfg.Server.Addr()))

	<-c
	slog.Info("Shutting down...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), appconfig.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", slog.Any("error", err))
	}
	db.Close()
	slog.Info("Shutdown complete")
}

func setupRoutes(server *fiber.App, app *handlers.App) {
	server.Get("/health", handlers.HealthCheck(app))

	api := server.Group("/api")
	relations := api.Group("/relations/:userID/:characterID")
	relations.Get("/", handlers.RelationDetail(app))
	relations.Post("/messages", handlers.Message(app))
	relations.Post("/events", handlers.SpecialEvent(app))
	relations.Put("/mood", handlers.SetMood(app))
	relations.Post("/mood/refresh", handlers.RefreshMood(app))
	relations.Get("/achievements", handlers.Achievements(app))
	relations.Get("/memories", handlers.Memories(app))
	relations.Get("/events", handlers.Events(app))
	relations.Get("/stats", handlers.Stats(app))

	server.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "endpoint not found")
	})
}
