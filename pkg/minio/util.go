package minio

import "strings"

func validateConfig(cfg *Config) error {
	if cfg.Endpoint == "" {
		return newInvalidInputError("endpoint is required")
	}
	if cfg.AccessKey == "" {
		return newInvalidInputError("access key is required")
	}
	if cfg.SecretKey == "" {
		return newInvalidInputError("secret key is required")
	}
	if cfg.Bucket == "" {
		return newInvalidInputError("bucket is required")
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint = cfg.Endpoint + DefaultEndpointPort
	}
	return nil
}

func validateUploadRequest(req *UploadRequest) error {
	if req.BucketName == "" {
		return newInvalidInputError("bucket name is required")
	}
	if err := validateObjectName(req.ObjectName); err != nil {
		return err
	}
	if req.Reader == nil {
		return newInvalidInputError("reader is required")
	}
	if req.Size <= 0 {
		return newInvalidInputError("size must be positive")
	}
	if req.Size > MaxFileSizeBytes {
		return newInvalidInputError("file size cannot exceed 5GB")
	}
	if req.ContentType == "" {
		return newInvalidInputError("content type is required")
	}
	return nil
}

func validateObjectName(objectName string) error {
	if objectName == "" {
		return newInvalidInputError("object name is required")
	}
	if strings.HasPrefix(objectName, "/") || strings.HasSuffix(objectName, "/") {
		return newInvalidInputError("object name cannot start or end with '/'")
	}
	return nil
}

func validateBucketName(bucketName string) error {
	if bucketName == "" {
		return newInvalidInputError("bucket name is required")
	}
	if len(bucketName) < 3 {
		return newInvalidInputError("bucket name must be at least 3 characters")
	}
	return nil
}
