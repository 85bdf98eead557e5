package report

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"model-compare/core/storage"

	"github.com/minio/minio-go/v7"
)

// Upload copies a written report into the bucket under prefix and returns the
// object name.
func Upload(ctx context.Context, client storage.Client, bucket, prefix, file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat report: %w", err)
	}

	objectName := path.Join(prefix, filepath.Base(file))
	contentType := "text/plain; charset=utf-8"
	if filepath.Ext(file) == FormatJSON.Extension() {
		contentType = "application/json"
	}

	_, err = client.PutObject(ctx, bucket, objectName, f, info.Size(), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report to %s/%s: %w", bucket, objectName, err)
	}

	return objectName, nil
}
