// Package config provides configuration management for model-compare.
//
// It loads a .env file when present (godotenv), then resolves every setting from
// environment variables through Viper, falling back to the `default` struct tags.
// Nested keys map to upper-case variables joined by underscores, so
// storage.bucket is read from STORAGE_BUCKET.
//
// # Configuration Structure
//
//   - Server: serve mode port, API key and body limit
//   - Storage: S3/MinIO credentials and bucket
//   - Database: MySQL connection for run history
//   - Log: logging level and format
//   - Report: default report format and upload prefix
//   - Cache: extracted-mapping cache size and TTL
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Storage.Bucket)
package config
