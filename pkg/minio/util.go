package minio

import (
	"fmt"
	"strings"
)

// FormatObjectURL renders a bucket/object pair as an s3:// reference.
func FormatObjectURL(bucket, objectName string) string {
	return fmt.Sprintf("s3://%s/%s", bucket, objectName)
}

// ParseObjectURL splits an s3://bucket/object reference.
func ParseObjectURL(fileURL string) (bucket, objectName string, err error) {
	const prefix = "s3://"
	if !strings.HasPrefix(fileURL, prefix) {
		return "", "", fmt.Errorf("invalid object URL format: %s", fileURL)
	}

	parts := strings.SplitN(fileURL[len(prefix):], "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid object URL format: %s", fileURL)
	}

	return parts[0], parts[1], nil
}
