package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IBM/sarama"

	"insight-srv/internal/insights"
	kafkaDelivery "insight-srv/internal/insights/delivery/kafka"
	"insight-srv/internal/model"
	"insight-srv/pkg/scope"
)

// handleSyncRequestedMessage receives a message, normalizes scope + input and
// delegates to the usecase (no business logic here).
func (c *Consumer) handleSyncRequestedMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	c.l.Infof(ctx, "insights.delivery.kafka.consumer.handleSyncRequestedMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	// 1. Unmarshal message
	var message kafkaDelivery.SyncRequestedMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "insights.delivery.kafka.consumer.handleSyncRequestedMessage: Invalid message format (skipping): %v", err)
		return nil // Skip invalid messages
	}

	// 2. Validate message (format only; business rules stay in usecase)
	if message.JobID == "" || message.AccountID == "" {
		c.l.Warnf(ctx, "insights.delivery.kafka.consumer.handleSyncRequestedMessage: Invalid message: missing required fields (skipping)")
		return nil
	}

	// 3. Map to usecase input (presenter)
	job := toSyncJob(message)

	// 4. Create scope (system scope for background processing) and set to context
	sc := model.Scope{
		UserID: "system",
		Role:   "system",
	}
	ctx = scope.SetScopeToContext(ctx, sc)

	// 5. Call UseCase (scope already in context)
	result, err := c.uc.ProcessSync(ctx, job)
	if err != nil {
		if errors.Is(err, insights.ErrTokenExpired) {
			// Retrying cannot help until the user reconnects. Mark done.
			c.l.Warnf(ctx, "insights.delivery.kafka.consumer.handleSyncRequestedMessage: Token expired for account %s, job %s dropped",
				message.AccountID, message.JobID)
			return nil
		}
		c.l.Errorf(ctx, "insights.delivery.kafka.consumer.handleSyncRequestedMessage: usecase ProcessSync failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "insights.delivery.kafka.consumer.handleSyncRequestedMessage: Successfully processed job %s: media=%d, partial=%d, failed=%d",
		message.JobID, result.MediaCount, result.PartialCount, result.FailedCount)
	return nil
}
