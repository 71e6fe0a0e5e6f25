package export

import "time"

// DownloadURLTTL bounds how long a presigned export link stays valid.
const DownloadURLTTL = 24 * time.Hour

type CreateInput struct {
	AccountID string
}

type CreateOutput struct {
	ID          string
	Status      string
	RowCount    int
	DownloadURL string
}

type GetDetailOutput struct {
	ID            string
	AccountID     string
	Status        string
	ErrorMessage  string
	RowCount      int
	FileSizeBytes int64
	DownloadURL   string
	CompletedAt   *time.Time
	CreatedAt     time.Time
}
