package consumer

import (
	"insight-srv/internal/insights"
	kafkaDelivery "insight-srv/internal/insights/delivery/kafka"
)

// toSyncJob maps the Kafka message DTO to the usecase input (delivery → usecase boundary).
func toSyncJob(m kafkaDelivery.SyncRequestedMessage) insights.SyncJob {
	return insights.SyncJob{
		JobID:       m.JobID,
		AccountID:   m.AccountID,
		UserID:      m.UserID,
		RequestedAt: m.RequestedAt,
	}
}
