package kafka

import (
	"fmt"
	"sync"

	"insight-srv/config"
	"insight-srv/pkg/kafka"
)

// Producers bundles the sync pipeline producers, one per topic.
type Producers struct {
	SyncRequest   kafka.IProducer
	SyncCompleted kafka.IProducer
}

var (
	instance *Producers
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes the sync pipeline Kafka producers using singleton pattern.
func Connect(cfg config.KafkaConfig) (*Producers, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		request, e := kafka.NewProducer(kafka.Config{
			Brokers: cfg.Brokers,
			Topic:   cfg.SyncRequestTopic,
		})
		if e != nil {
			err = fmt.Errorf("failed to initialize sync request producer: %w", e)
			initErr = err
			return
		}

		completed, e := kafka.NewProducer(kafka.Config{
			Brokers: cfg.Brokers,
			Topic:   cfg.SyncCompletedTopic,
		})
		if e != nil {
			_ = request.Close()
			err = fmt.Errorf("failed to initialize sync completed producer: %w", e)
			initErr = err
			return
		}

		instance = &Producers{
			SyncRequest:   request,
			SyncCompleted: completed,
		}
	})

	return instance, err
}

// GetClient returns the singleton producer bundle.
func GetClient() *Producers {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("Kafka producers not initialized. Call Connect() first")
	}
	return instance
}

// HealthCheck checks if Kafka is initialized and reachable.
func HealthCheck() error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("Kafka producers not initialized")
	}
	if err := instance.SyncRequest.HealthCheck(); err != nil {
		return err
	}
	return instance.SyncCompleted.HealthCheck()
}

// Disconnect closes the Kafka producers.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		if err := instance.SyncRequest.Close(); err != nil {
			return err
		}
		if err := instance.SyncCompleted.Close(); err != nil {
			return err
		}
		instance = nil
		once = sync.Once{}
		initErr = nil
	}
	return nil
}
