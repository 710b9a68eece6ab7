package minio

import (
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

// MinIOConfig holds the configuration for the MinIO client.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// implMinIO implements MinIO.
type implMinIO struct {
	minioClient *minio.Client
	config      MinIOConfig
}

// FileInfo represents metadata about a stored object.
type FileInfo struct {
	BucketName   string    `json:"bucket_name"`
	ObjectName   string    `json:"object_name"`
	Size         int64     `json:"size"`
	ETag         string    `json:"etag"`
	LastModified time.Time `json:"last_modified"`
}

// UploadRequest contains the parameters for uploading an object.
type UploadRequest struct {
	BucketName  string            `json:"bucket_name"`
	ObjectName  string            `json:"object_name"`
	Reader      io.Reader         `json:"-"`
	Size        int64             `json:"size"`
	ContentType string            `json:"content_type"`
	Metadata    map[string]string `json:"metadata"`
}

// DownloadRequest contains the parameters for downloading an object.
type DownloadRequest struct {
	BucketName string `json:"bucket_name"`
	ObjectName string `json:"object_name"`
}
