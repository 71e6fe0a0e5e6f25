package consumer

import (
	"context"
	"fmt"
	"time"

	accountPostgre "insight-srv/internal/account/repository/postgre"
	accountUsecase "insight-srv/internal/account/usecase"
	insightsConsumer "insight-srv/internal/insights/delivery/kafka/consumer"
	insightsProducer "insight-srv/internal/insights/delivery/kafka/producer"
	insightsPostgre "insight-srv/internal/insights/repository/postgre"
	insightsRedis "insight-srv/internal/insights/repository/redis"
	insightsUsecase "insight-srv/internal/insights/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	insightsConsumer *insightsConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	// Account domain (token access for the sync worker)
	accountRepo := accountPostgre.New(srv.postgresDB, srv.l)
	accountUC := accountUsecase.New(accountRepo, srv.graphClient, srv.encrypter, srv.l)

	// Insights domain
	insightsRepo := insightsPostgre.New(srv.postgresDB, srv.l)
	cacheRepo := insightsRedis.New(srv.redisClient, srv.l, insightsRedis.Config{
		DashboardTTL: time.Duration(srv.config.Insights.DashboardTTL) * time.Second,
		MediaTTL:     time.Duration(srv.config.Insights.MediaTTL) * time.Second,
	})
	publisher := insightsProducer.New(srv.l, srv.syncRequestProducer, srv.syncCompletedProducer)
	insightsUC := insightsUsecase.New(
		insightsRepo,
		cacheRepo,
		accountUC,
		srv.graphClient,
		publisher,
		srv.l,
		srv.insightsUsecaseConfig(),
	)

	cons, err := insightsConsumer.New(insightsConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.config.Kafka,
		UseCase:     insightsUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create insights consumer: %w", err)
	}

	srv.l.Infof(ctx, "Insights domain initialized")

	return &domainConsumers{
		insightsConsumer: cons,
	}, nil
}

func (srv *ConsumerServer) insightsUsecaseConfig() insightsUsecase.Config {
	cfg := insightsUsecase.DefaultConfig()

	ins := srv.config.Insights
	if ins.LikeWeight > 0 || ins.CommentWeight > 0 || ins.SaveWeight > 0 || ins.ShareWeight > 0 {
		cfg.Weights.Like = ins.LikeWeight
		cfg.Weights.Comment = ins.CommentWeight
		cfg.Weights.Save = ins.SaveWeight
		cfg.Weights.Share = ins.ShareWeight
	}
	if ins.MediaLimit > 0 {
		cfg.MediaLimit = ins.MediaLimit
	}
	if ins.MaxConcurrency > 0 {
		cfg.MaxConcurrency = ins.MaxConcurrency
	}
	return cfg
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.insightsConsumer.ConsumeSyncRequested(ctx); err != nil {
		return fmt.Errorf("failed to start insights consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.insightsConsumer != nil {
		if err := consumers.insightsConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing insights consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
