package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO defines the object-storage operations used by the service.
// Implementations are safe for concurrent use.
type MinIO interface {
	HealthCheck(ctx context.Context) error
	EnsureBucket(ctx context.Context, bucketName string) error
	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)
	DownloadFile(ctx context.Context, req *DownloadRequest) (io.ReadCloser, error)
	FileExists(ctx context.Context, bucketName, objectName string) (bool, error)
	DeleteFile(ctx context.Context, bucketName, objectName string) error
}

// NewMinIO creates a new MinIO client. Returns the MinIO interface.
func NewMinIO(cfg MinIOConfig) (MinIO, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio: endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio: credentials are required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: failed to create client: %w", err)
	}

	return &implMinIO{
		minioClient: client,
		config:      cfg,
	}, nil
}
