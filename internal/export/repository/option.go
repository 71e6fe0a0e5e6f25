package repository

// CreateOptions carries the fields for a new export row.
type CreateOptions struct {
	AccountID   string
	RequestedBy string
}

// MarkCompletedOptions records a finished upload.
type MarkCompletedOptions struct {
	ID            string
	ObjectKey     string
	FileSizeBytes int64
	RowCount      int
}
