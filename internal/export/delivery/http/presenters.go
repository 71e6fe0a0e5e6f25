package http

import (
	"time"

	"insight-srv/internal/export"
)

type createResp struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	RowCount    int    `json:"row_count"`
	DownloadURL string `json:"download_url"`
}

type detailResp struct {
	ID            string  `json:"id"`
	AccountID     string  `json:"account_id"`
	Status        string  `json:"status"`
	ErrorMessage  string  `json:"error_message,omitempty"`
	RowCount      int     `json:"row_count"`
	FileSizeBytes int64   `json:"file_size_bytes"`
	DownloadURL   string  `json:"download_url,omitempty"`
	CompletedAt   *string `json:"completed_at"`
	CreatedAt     string  `json:"created_at"`
}

func newDetailResp(o export.GetDetailOutput) detailResp {
	resp := detailResp{
		ID:            o.ID,
		AccountID:     o.AccountID,
		Status:        o.Status,
		ErrorMessage:  o.ErrorMessage,
		RowCount:      o.RowCount,
		FileSizeBytes: o.FileSizeBytes,
		DownloadURL:   o.DownloadURL,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
	}
	if o.CompletedAt != nil {
		formatted := o.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &formatted
	}
	return resp
}
