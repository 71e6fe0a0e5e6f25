package redis

import "time"

const (
	// DefaultConnectTimeout is the timeout for the initial connection ping.
	DefaultConnectTimeout = 5 * time.Second

	// scanBatchSize is the COUNT hint for SCAN-based deletes.
	scanBatchSize = 100
)
