package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Accounts, media, insight snapshots, exports
	Postgres PostgresConfig

	// Redis - Dashboard and media caching
	Redis RedisConfig

	// Kafka - Sync pipeline events
	Kafka KafkaConfig

	// MinIO - Export file storage
	MinIO MinIOConfig

	// Graph - Meta Graph API access
	Graph GraphConfig

	// Insights - Scoring and sync tuning
	Insights InsightsConfig

	// JWT - Authentication
	JWT            JWTConfig
	Cookie         CookieConfig
	Encrypter      EncrypterConfig
	InternalConfig InternalConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka.
type KafkaConfig struct {
	Brokers            []string
	SyncRequestTopic   string
	SyncCompletedTopic string
	ConsumerGroupID    string
}

// MinIOConfig is the configuration for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// GraphConfig is the configuration for the Meta Graph API client.
type GraphConfig struct {
	BaseURL string
	Timeout int // in seconds
	Retries int
}

// InsightsConfig tunes content scoring and sync behavior.
type InsightsConfig struct {
	LikeWeight     float64
	CommentWeight  float64
	SaveWeight     float64
	ShareWeight    float64
	MediaLimit     int
	MaxConcurrency int
	DashboardTTL   int // in seconds
	MediaTTL       int // in seconds
}

// JWTConfig is used to issue and verify dashboard session tokens.
type JWTConfig struct {
	Algorithm string
	Issuer    string
	Audience  []string
	SecretKey string
	TTL       int // in seconds
}

// CookieConfig configures the auth cookie (name, domain, secure, max-age).
type CookieConfig struct {
	Domain         string
	Secure         bool
	SameSite       string
	MaxAge         int
	MaxAgeRemember int
	Name           string
}

// EncrypterConfig is the configuration for the encrypter.
type EncrypterConfig struct {
	Key string
}

// InternalConfig is the configuration for internal service authentication.
type InternalConfig struct {
	// InternalKey is the shared secret for InternalAuth (Authorization header). Optional; leave empty to disable.
	InternalKey string
	ServiceKeys map[string]string
}

// DiscordConfig configures the error notification webhook.
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper.
func Load() (*Config, error) {
	viper.SetConfigName("insight-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/insight/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Kafka
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.SyncRequestTopic = viper.GetString("kafka.sync_request_topic")
	cfg.Kafka.SyncCompletedTopic = viper.GetString("kafka.sync_completed_topic")
	cfg.Kafka.ConsumerGroupID = viper.GetString("kafka.consumer_group_id")

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// Graph API
	cfg.Graph.BaseURL = viper.GetString("graph.base_url")
	cfg.Graph.Timeout = viper.GetInt("graph.timeout")
	cfg.Graph.Retries = viper.GetInt("graph.retries")

	// Insights
	cfg.Insights.LikeWeight = viper.GetFloat64("insights.like_weight")
	cfg.Insights.CommentWeight = viper.GetFloat64("insights.comment_weight")
	cfg.Insights.SaveWeight = viper.GetFloat64("insights.save_weight")
	cfg.Insights.ShareWeight = viper.GetFloat64("insights.share_weight")
	cfg.Insights.MediaLimit = viper.GetInt("insights.media_limit")
	cfg.Insights.MaxConcurrency = viper.GetInt("insights.max_concurrency")
	cfg.Insights.DashboardTTL = viper.GetInt("insights.dashboard_ttl")
	cfg.Insights.MediaTTL = viper.GetInt("insights.media_ttl")

	// JWT
	cfg.JWT.Algorithm = viper.GetString("jwt.algorithm")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetStringSlice("jwt.audience")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.TTL = viper.GetInt("jwt.ttl")

	// Cookie
	cfg.Cookie.Domain = viper.GetString("cookie.domain")
	cfg.Cookie.Secure = viper.GetBool("cookie.secure")
	cfg.Cookie.SameSite = viper.GetString("cookie.samesite")
	cfg.Cookie.MaxAge = viper.GetInt("cookie.max_age")
	cfg.Cookie.MaxAgeRemember = viper.GetInt("cookie.max_age_remember")
	cfg.Cookie.Name = viper.GetString("cookie.name")

	// Encrypter
	cfg.Encrypter.Key = viper.GetString("encrypter.key")

	// Internal auth key and service keys
	cfg.InternalConfig.InternalKey = viper.GetString("internal.internal_key")
	serviceKeys := make(map[string]string)
	if viper.IsSet("internal.service_keys") {
		for service, key := range viper.GetStringMapString("internal.service_keys") {
			serviceKeys[service] = key
		}
	}
	cfg.InternalConfig.ServiceKeys = serviceKeys

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "insights")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Kafka
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.sync_request_topic", "insights.sync.requested")
	viper.SetDefault("kafka.sync_completed_topic", "insights.sync.completed")
	viper.SetDefault("kafka.consumer_group_id", "insight-srv-sync")

	// MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "insight-exports")

	// Graph API
	viper.SetDefault("graph.base_url", "https://graph.facebook.com/v21.0")
	viper.SetDefault("graph.timeout", 15)
	viper.SetDefault("graph.retries", 2)

	// Insights scoring and sync
	viper.SetDefault("insights.like_weight", 1.0)
	viper.SetDefault("insights.comment_weight", 2.0)
	viper.SetDefault("insights.save_weight", 3.0)
	viper.SetDefault("insights.share_weight", 4.0)
	viper.SetDefault("insights.media_limit", 50)
	viper.SetDefault("insights.max_concurrency", 50)
	viper.SetDefault("insights.dashboard_ttl", 300)
	viper.SetDefault("insights.media_ttl", 600)

	// JWT
	viper.SetDefault("jwt.algorithm", "HS256")
	viper.SetDefault("jwt.issuer", "insight-srv")
	viper.SetDefault("jwt.audience", []string{"insight-dashboard"})
	viper.SetDefault("jwt.ttl", 28800) // 8 hours

	// Cookie
	viper.SetDefault("cookie.domain", "")
	viper.SetDefault("cookie.secure", true)
	viper.SetDefault("cookie.samesite", "Lax")
	viper.SetDefault("cookie.max_age", 28800)           // 8 hours
	viper.SetDefault("cookie.max_age_remember", 604800) // 7 days
	viper.SetDefault("cookie.name", "insight_auth_token")
}

func validate(cfg *Config) error {
	// Validate JWT fields
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}
	if cfg.JWT.Issuer == "" {
		return fmt.Errorf("jwt.issuer is required")
	}
	if len(cfg.JWT.Audience) == 0 {
		return fmt.Errorf("jwt.audience must have at least one value")
	}
	if cfg.JWT.TTL <= 0 {
		return fmt.Errorf("jwt.ttl must be greater than 0")
	}

	// Validate Encrypter
	if cfg.Encrypter.Key == "" {
		return fmt.Errorf("encrypter.key is required")
	}
	if len(cfg.Encrypter.Key) != 16 && len(cfg.Encrypter.Key) != 24 && len(cfg.Encrypter.Key) != 32 {
		return fmt.Errorf("encrypter.key must be 16, 24, or 32 bytes for AES")
	}

	// Validate Postgres
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}

	// Validate insights tuning
	if cfg.Insights.MaxConcurrency <= 0 {
		return fmt.Errorf("insights.max_concurrency must be greater than 0")
	}
	if cfg.Insights.MediaLimit <= 0 {
		return fmt.Errorf("insights.media_limit must be greater than 0")
	}

	return nil
}
