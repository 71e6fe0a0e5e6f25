package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"insight-srv/internal/insights"
	kafkaDelivery "insight-srv/internal/insights/delivery/kafka"
)

// PublishSyncRequested publishes a sync request event
func (p *implProducer) PublishSyncRequested(ctx context.Context, job insights.SyncJob) error {
	// Convert to message DTO
	msg := kafkaDelivery.SyncRequestedMessage{
		JobID:       job.JobID,
		AccountID:   job.AccountID,
		UserID:      job.UserID,
		RequestedAt: job.RequestedAt,
	}

	// Marshal to JSON
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal sync request: %w", err)
	}

	// Publish to Kafka, keyed by account so jobs for one account stay ordered
	key := []byte(job.AccountID)
	if err := p.requestedProducer.Publish(key, body); err != nil {
		return fmt.Errorf("failed to publish sync request: %w", err)
	}

	p.l.Infof(ctx, "Published sync request %s for account %s", job.JobID, job.AccountID)
	return nil
}

// PublishSyncCompleted publishes a sync completion event
func (p *implProducer) PublishSyncCompleted(ctx context.Context, result insights.SyncResult) error {
	// Convert to message DTO
	msg := kafkaDelivery.SyncCompletedMessage{
		JobID:        result.JobID,
		AccountID:    result.AccountID,
		MediaCount:   result.MediaCount,
		PartialCount: result.PartialCount,
		FailedCount:  result.FailedCount,
		SyncedAt:     result.SyncedAt,
	}

	// Marshal to JSON
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal sync result: %w", err)
	}

	// Publish to Kafka
	key := []byte(result.AccountID)
	if err := p.completedProducer.Publish(key, body); err != nil {
		return fmt.Errorf("failed to publish sync result: %w", err)
	}

	p.l.Infof(ctx, "Published sync completion %s for account %s: media=%d, partial=%d, failed=%d",
		result.JobID, result.AccountID, result.MediaCount, result.PartialCount, result.FailedCount)
	return nil
}
