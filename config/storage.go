package config

import "os"

// StorageConfig locates the bucket that holds letter attachments. Endpoint
// stays empty against real S3; a MinIO URL switches the client to path-style
// addressing for local development.
type StorageConfig struct {
	Region   string // AWS_REGION
	Bucket   string // AWS_S3_BUCKET
	Endpoint string // S3_ENDPOINT_URL, optional
}

func LoadStorageConfig() StorageConfig {
	return StorageConfig{
		Region:   os.Getenv("AWS_REGION"),
		Bucket:   os.Getenv("AWS_S3_BUCKET"),
		Endpoint: os.Getenv("S3_ENDPOINT_URL"),
	}
}
