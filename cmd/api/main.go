package main

import (
	"context"
	"fmt"
	"time"

	"insight-srv/config"
	configKafka "insight-srv/config/kafka"
	configMinio "insight-srv/config/minio"
	configPostgre "insight-srv/config/postgre"
	configRedis "insight-srv/config/redis"
	_ "insight-srv/docs" // Import swagger docs
	"insight-srv/internal/httpserver"
	"insight-srv/pkg/discord"
	"insight-srv/pkg/encrypter"
	"insight-srv/pkg/graphapi"
	pkgHTTP "insight-srv/pkg/http"
	pkgJWT "insight-srv/pkg/jwt"
	"insight-srv/pkg/log"
)

// @title       Insight Service API
// @description Instagram business account analytics dashboard API.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize encrypter (Graph token storage)
	encrypterInstance, err := encrypter.New(cfg.Encrypter.Key)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize encrypter: %v", err)
		return
	}

	// 4. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	// 6. Initialize Kafka producers (sync pipeline)
	producers, err := configKafka.Connect(cfg.Kafka)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Kafka: %v", err)
		return
	}
	defer configKafka.Disconnect()
	logger.Infof(ctx, "Kafka producers initialized (%v)", cfg.Kafka.Brokers)

	// 7. Initialize MinIO (export storage)
	minioClient, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)

	// 8. Initialize Graph API client
	graphClient := graphapi.New(graphapi.Config{
		BaseURL: cfg.Graph.BaseURL,
		HTTPClient: pkgHTTP.NewClient(pkgHTTP.ClientConfig{
			Timeout: time.Duration(cfg.Graph.Timeout) * time.Second,
			Retries: cfg.Graph.Retries,
		}),
	})
	logger.Infof(ctx, "Graph API client initialized (%s)", cfg.Graph.BaseURL)

	// 9. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 10. Initialize JWT manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize JWT manager: %v", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 11. Initialize and run the HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		PostgresDB:            postgresDB,
		RedisClient:           redisClient,
		MinIOClient:           minioClient,
		SyncRequestProducer:   producers.SyncRequest,
		SyncCompletedProducer: producers.SyncCompleted,

		GraphClient: graphClient,

		Config:       cfg,
		JWTManager:   jwtManager,
		CookieConfig: cfg.Cookie,
		Encrypter:    encrypterInstance,

		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
}
