// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so model exports can be read from, and reports
// written to, AWS S3 or a self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Object References
//
// Document sources of the form "s3://bucket/path/to/model.json" are object
// references; ParseURI splits them and IsNotFound classifies missing objects.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	info, err := client.StatObject(ctx, "models", "v1/model.json", minio.StatObjectOptions{})
package storage
