package consumer

import (
	"fmt"
)

// New creates a new consumer server with dependency validation
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:                     cfg.Logger,
		config:                cfg.Config,
		redisClient:           cfg.RedisClient,
		postgresDB:            cfg.PostgresDB,
		syncRequestProducer:   cfg.SyncRequestProducer,
		syncCompletedProducer: cfg.SyncCompletedProducer,
		graphClient:           cfg.GraphClient,
		encrypter:             cfg.Encrypter,
		discord:               cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided
func (srv *ConsumerServer) validate() error {
	// Core Configuration
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if srv.config == nil {
		return fmt.Errorf("config is required")
	}
	if len(srv.config.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka brokers are required")
	}

	// Infrastructure clients
	if srv.redisClient == nil {
		return fmt.Errorf("redis client is required")
	}
	if srv.postgresDB == nil {
		return fmt.Errorf("postgres db is required")
	}
	if srv.syncRequestProducer == nil {
		return fmt.Errorf("sync request producer is required")
	}
	if srv.syncCompletedProducer == nil {
		return fmt.Errorf("sync completed producer is required")
	}

	// Provider client
	if srv.graphClient == nil {
		return fmt.Errorf("graph client is required")
	}

	// Security
	if srv.encrypter == nil {
		return fmt.Errorf("encrypter is required")
	}

	return nil
}
