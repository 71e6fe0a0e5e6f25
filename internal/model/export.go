package model

import "time"

// Export statuses.
const (
	ExportStatusProcessing = "PROCESSING"
	ExportStatusCompleted  = "COMPLETED"
	ExportStatusFailed     = "FAILED"
)

// Export is one generated metrics export (CSV in object storage).
type Export struct {
	ID          string
	AccountID   string
	RequestedBy string

	Status       string // PROCESSING | COMPLETED | FAILED
	ErrorMessage string

	ObjectKey     string
	FileSizeBytes int64
	RowCount      int

	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
