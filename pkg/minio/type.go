package minio

import (
	"sync"

	"github.com/minio/minio-go/v7"
)

// implMinIO implements the MinIO interface.
type implMinIO struct {
	minioClient *minio.Client
	config      *Config

	mu        sync.RWMutex
	connected bool
}
