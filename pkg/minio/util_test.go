package minio

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateConfig(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		cfg := &Config{Endpoint: "localhost:9000", AccessKey: "ak", SecretKey: "sk", Bucket: "exports"}
		if err := validateConfig(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("default port appended when missing", func(t *testing.T) {
		cfg := &Config{Endpoint: "minio.internal", AccessKey: "ak", SecretKey: "sk", Bucket: "exports"}
		if err := validateConfig(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(cfg.Endpoint, ":") {
			t.Fatalf("expected port appended, got %q", cfg.Endpoint)
		}
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		cases := []struct {
			name string
			cfg  Config
		}{
			{"endpoint", Config{AccessKey: "ak", SecretKey: "sk", Bucket: "b"}},
			{"access key", Config{Endpoint: "e:9000", SecretKey: "sk", Bucket: "b"}},
			{"secret key", Config{Endpoint: "e:9000", AccessKey: "ak", Bucket: "b"}},
			{"bucket", Config{Endpoint: "e:9000", AccessKey: "ak", SecretKey: "sk"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				cfg := tc.cfg
				var invalid *InvalidInputError
				if err := validateConfig(&cfg); !errors.As(err, &invalid) {
					t.Fatalf("expected InvalidInputError, got %v", err)
				}
			})
		}
	})
}

func TestValidateUploadRequest(t *testing.T) {
	valid := func() *UploadRequest {
		return &UploadRequest{
			BucketName:  "exports",
			ObjectName:  "exports/acc/123.csv",
			Reader:      strings.NewReader("data"),
			Size:        4,
			ContentType: "text/csv",
		}
	}

	if err := validateUploadRequest(valid()); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	t.Run("rejects invalid requests", func(t *testing.T) {
		mutations := map[string]func(*UploadRequest){
			"empty bucket":        func(r *UploadRequest) { r.BucketName = "" },
			"empty object":        func(r *UploadRequest) { r.ObjectName = "" },
			"leading slash":       func(r *UploadRequest) { r.ObjectName = "/a.csv" },
			"trailing slash":      func(r *UploadRequest) { r.ObjectName = "a/" },
			"nil reader":          func(r *UploadRequest) { r.Reader = nil },
			"zero size":           func(r *UploadRequest) { r.Size = 0 },
			"oversize":            func(r *UploadRequest) { r.Size = MaxFileSizeBytes + 1 },
			"missing contentType": func(r *UploadRequest) { r.ContentType = "" },
		}

		for name, mutate := range mutations {
			t.Run(name, func(t *testing.T) {
				req := valid()
				mutate(req)
				var invalid *InvalidInputError
				if err := validateUploadRequest(req); !errors.As(err, &invalid) {
					t.Fatalf("expected InvalidInputError, got %v", err)
				}
			})
		}
	})
}

func TestValidateBucketName(t *testing.T) {
	if err := validateBucketName("exports"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"", "ab"} {
		if err := validateBucketName(name); err == nil {
			t.Errorf("expected error for bucket name %q", name)
		}
	}
}
