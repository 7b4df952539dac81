package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kindredchat/kindred/kindred"
	"github.com/kindredchat/kindred/kindred/database"
	"github.com/kindredchat/kindred/kindred/favorability"
	"github.com/kindredchat/kindred/kindred/logger"
	"github.com/kindredchat/kindred/kindred/migration"
)

func main() {
	customHandler := logger.NewHandler()
	slog.SetDefault(slog.New(customHandler))

	path := flag.String("config", "config.toml", "path to config")
	batchSize := flag.Int("batch-size", 0, "override insert batch size")
	sleepMS := flag.Int("sleep-ms", 0, "pause between batch inserts in milliseconds")
	syncSchema := flag.Bool("sync-schema", true, "create tables and indexes before importing")
	flag.Parse()

	cfg, err := kindred.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to read config", slog.Any("error", err))
		os.Exit(-1)
	}
	if cfg.Legacy.MongoURI == "" {
		slog.Error("legacy.mongo_uri is not configured")
		os.Exit(-1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Failed to connect to database", slog.Any("error", err))
		os.Exit(-1)
	}
	defer db.Close()

	if *syncSchema {
		schemaCtx, cancel := context.WithTimeout(ctx, time.Minute)
		err := db.InitializeSchema(schemaCtx)
		cancel()
		if err != nil {
			slog.Error("Failed to initialize schema", slog.Any("error", err))
			os.Exit(-1)
		}
	}

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Legacy.MongoURI))
	cancel()
	if err != nil {
		slog.Error("Failed to connect to legacy MongoDB", slog.Any("error", err))
		os.Exit(-1)
	}
	defer client.Disconnect(ctx)

	migrator := migration.NewMigrator(
		db.BunDB(),
		client.Database(cfg.Legacy.Database),
		favorability.NewDefaultConfig(),
	)
	migrator.SetBatchSize(*batchSize)
	if *sleepMS > 0 {
		migrator.SetSleepBetween(time.Duration(*sleepMS) * time.Millisecond)
	}

	if err := migrator.MigrateAll(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Migration completed successfully")
}
