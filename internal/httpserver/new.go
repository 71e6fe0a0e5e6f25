package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"insight-srv/config"
	"insight-srv/pkg/discord"
	"insight-srv/pkg/encrypter"
	"insight-srv/pkg/graphapi"
	pkgJWT "insight-srv/pkg/jwt"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
	pkgMinio "insight-srv/pkg/minio"
	pkgRedis "insight-srv/pkg/redis"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Infrastructure clients
	postgresDB            *sql.DB
	redisClient           pkgRedis.IRedis
	minioClient           pkgMinio.MinIO
	syncRequestProducer   pkgKafka.IProducer
	syncCompletedProducer pkgKafka.IProducer

	// Provider client
	graphClient graphapi.IClient

	// Authentication & Security Configuration
	config       *config.Config
	jwtManager   *pkgJWT.Manager
	cookieConfig config.CookieConfig
	encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Infrastructure clients
	PostgresDB            *sql.DB
	RedisClient           pkgRedis.IRedis
	MinIOClient           pkgMinio.MinIO
	SyncRequestProducer   pkgKafka.IProducer
	SyncCompletedProducer pkgKafka.IProducer

	// Provider client
	GraphClient graphapi.IClient

	// Authentication & Security Configuration
	Config       *config.Config
	JWTManager   *pkgJWT.Manager
	CookieConfig config.CookieConfig
	Encrypter    encrypter.Encrypter

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB:            cfg.PostgresDB,
		redisClient:           cfg.RedisClient,
		minioClient:           cfg.MinIOClient,
		syncRequestProducer:   cfg.SyncRequestProducer,
		syncCompletedProducer: cfg.SyncCompletedProducer,

		graphClient: cfg.GraphClient,

		config:       cfg.Config,
		jwtManager:   cfg.JWTManager,
		cookieConfig: cfg.CookieConfig,
		encrypter:    cfg.Encrypter,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Infrastructure clients
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.minioClient == nil {
		return errors.New("minioClient is required")
	}
	if srv.syncRequestProducer == nil {
		return errors.New("syncRequestProducer is required")
	}
	if srv.syncCompletedProducer == nil {
		return errors.New("syncCompletedProducer is required")
	}
	if srv.graphClient == nil {
		return errors.New("graphClient is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}

	return nil
}
