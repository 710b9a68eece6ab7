package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// HealthCheck verifies the connection by listing buckets.
func (m *implMinIO) HealthCheck(ctx context.Context) error {
	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		return fmt.Errorf("minio: health check failed: %w", err)
	}
	return nil
}

// EnsureBucket creates the bucket if it does not exist.
func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("minio: failed to check bucket %q: %w", bucketName, err)
	}
	if exists {
		return nil
	}
	if err := m.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region}); err != nil {
		return fmt.Errorf("minio: failed to create bucket %q: %w", bucketName, err)
	}
	return nil
}

// UploadFile uploads an object and returns its metadata.
func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	opts := minio.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: req.Metadata,
	}

	info, err := m.minioClient.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, opts)
	if err != nil {
		return nil, fmt.Errorf("minio: failed to upload %q: %w", req.ObjectName, err)
	}

	return &FileInfo{
		BucketName:   req.BucketName,
		ObjectName:   req.ObjectName,
		Size:         info.Size,
		ETag:         info.ETag,
		LastModified: info.LastModified,
	}, nil
}

// DownloadFile returns a reader over the object. The caller must close it.
func (m *implMinIO) DownloadFile(ctx context.Context, req *DownloadRequest) (io.ReadCloser, error) {
	obj, err := m.minioClient.GetObject(ctx, req.BucketName, req.ObjectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("minio: failed to download %q: %w", req.ObjectName, err)
	}
	// GetObject is lazy; stat to surface missing objects now.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, fmt.Errorf("minio: failed to stat %q: %w", req.ObjectName, err)
	}
	return obj, nil
}

// FileExists reports whether the object exists.
func (m *implMinIO) FileExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	_, err := m.minioClient.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("minio: failed to stat %q: %w", objectName, err)
	}
	return true, nil
}

// DeleteFile removes the object.
func (m *implMinIO) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	if err := m.minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("minio: failed to delete %q: %w", objectName, err)
	}
	return nil
}
