package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"insight-srv/config"
	configKafka "insight-srv/config/kafka"
	configPostgre "insight-srv/config/postgre"
	configRedis "insight-srv/config/redis"
	"insight-srv/internal/consumer"
	"insight-srv/pkg/discord"
	"insight-srv/pkg/encrypter"
	"insight-srv/pkg/graphapi"
	pkgHTTP "insight-srv/pkg/http"
	"insight-srv/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Insight Sync Consumer...")

	// Encrypter (Graph token storage)
	encrypterInstance, err := encrypter.New(cfg.Encrypter.Key)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize encrypter: %v", err)
		return
	}

	// Kafka producers (for publishing completion events)
	producers, err := configKafka.Connect(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka: %v", err)
		return
	}
	defer configKafka.Disconnect()
	logger.Info(ctx, "Kafka producers initialized")

	// Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// Graph API client
	graphClient := graphapi.New(graphapi.Config{
		BaseURL: cfg.Graph.BaseURL,
		HTTPClient: pkgHTTP.NewClient(pkgHTTP.ClientConfig{
			Timeout: time.Duration(cfg.Graph.Timeout) * time.Second,
			Retries: cfg.Graph.Retries,
		}),
	})
	logger.Info(ctx, "Graph API client initialized")

	// Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Info(ctx, "Discord client initialized")
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:                logger,
		Config:                cfg,
		RedisClient:           redisClient,
		PostgresDB:            postgresDB,
		SyncRequestProducer:   producers.SyncRequest,
		SyncCompletedProducer: producers.SyncCompleted,
		GraphClient:           graphClient,
		Encrypter:             encrypterInstance,
		Discord:               discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}
}
