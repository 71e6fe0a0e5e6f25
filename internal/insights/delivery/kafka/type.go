package kafka

import (
	"time"
)

const (
	// Producer + consumer topics of the sync pipeline.
	TopicSyncRequested = "insights.sync.requested"
	TopicSyncCompleted = "insights.sync.completed"

	GroupIDSync = "insight-srv-sync"
)

// SyncRequestedMessage - Kafka message for insights.sync.requested
type SyncRequestedMessage struct {
	JobID       string    `json:"job_id"`
	AccountID   string    `json:"account_id"`
	UserID      string    `json:"user_id"`
	RequestedAt time.Time `json:"requested_at"`
}

// SyncCompletedMessage - Kafka message for insights.sync.completed
type SyncCompletedMessage struct {
	JobID        string    `json:"job_id"`
	AccountID    string    `json:"account_id"`
	MediaCount   int       `json:"media_count"`
	PartialCount int       `json:"partial_count"`
	FailedCount  int       `json:"failed_count"`
	SyncedAt     time.Time `json:"synced_at"`
}
