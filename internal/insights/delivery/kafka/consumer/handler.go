package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type syncRequestedHandler struct {
	consumer *Consumer
}

func (h *syncRequestedHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *syncRequestedHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *syncRequestedHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleSyncRequestedMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "insights.delivery.kafka.consumer.ConsumeSyncRequested: Failed to process sync request: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
