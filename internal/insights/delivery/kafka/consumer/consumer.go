package consumer

import (
	"context"

	kafkaDelivery "insight-srv/internal/insights/delivery/kafka"
)

// ConsumeSyncRequested starts consuming sync request messages
func (c *Consumer) ConsumeSyncRequested(ctx context.Context) error {
	// Create consumer group
	group, err := c.createConsumerGroup(c.groupID())
	if err != nil {
		return err
	}
	c.syncRequestedGroup = group

	// Create handler
	handler := &syncRequestedHandler{
		consumer: c,
	}

	topic := c.requestTopic()

	// Start consuming in goroutine with context
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{topic}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	// Start error handler
	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", topic)

	return nil
}

func (c *Consumer) requestTopic() string {
	if c.kafkaConfig.SyncRequestTopic != "" {
		return c.kafkaConfig.SyncRequestTopic
	}
	return kafkaDelivery.TopicSyncRequested
}

func (c *Consumer) groupID() string {
	if c.kafkaConfig.ConsumerGroupID != "" {
		return c.kafkaConfig.ConsumerGroupID
	}
	return kafkaDelivery.GroupIDSync
}
