package kafka

import (
	"context"
	"errors"

	"github.com/IBM/sarama"
)

// ConsumeWithContext consumes from topics until the context is cancelled.
// Sarama returns from Consume on every rebalance, so the loop re-enters
// until cancellation.
func (c *consumerImpl) ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	for {
		if err := c.group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close closes the consumer group.
func (c *consumerImpl) Close() error {
	return c.group.Close()
}

// Errors returns the consumer group error channel.
func (c *consumerImpl) Errors() <-chan error {
	out := make(chan error)
	go func() {
		defer close(out)
		for err := range c.group.Errors() {
			out <- err
		}
	}()
	return out
}
