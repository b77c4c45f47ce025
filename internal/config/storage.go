package config

import (
	"fmt"
	"os"
	"time"

	"github.com/docker/go-units"
)

const (
	// EnvStorageBucket overrides the object storage bucket name.
	EnvStorageBucket = "STORAGE_BUCKET"

	// EnvStorageRegion overrides the object storage region.
	EnvStorageRegion = "STORAGE_REGION"

	// EnvStorageEndpoint overrides the object storage endpoint (for local stacks).
	EnvStorageEndpoint = "STORAGE_ENDPOINT"

	// EnvStorageAccessKeyID overrides the static access key id.
	EnvStorageAccessKeyID = "STORAGE_ACCESS_KEY_ID"

	// EnvStorageSecretAccessKey overrides the static secret access key.
	EnvStorageSecretAccessKey = "STORAGE_SECRET_ACCESS_KEY"

	// EnvStorageURLExpiry overrides the presigned URL expiry.
	EnvStorageURLExpiry = "STORAGE_URL_EXPIRY"

	// EnvStorageMaxFileSize overrides the maximum accepted file size.
	EnvStorageMaxFileSize = "STORAGE_MAX_FILE_SIZE"
)

// StorageConfig contains object storage configuration for the S3 gateway.
// When Endpoint is set, the client targets a custom S3-compatible endpoint
// (LocalStack, MinIO) with path-style addressing and static credentials.
type StorageConfig struct {
	Bucket          string `toml:"bucket"`
	Region          string `toml:"region"`
	Endpoint        string `toml:"endpoint"`
	AccessKeyID     string `toml:"access_key_id"`
	SecretAccessKey string `toml:"secret_access_key"`
	URLExpiry       string `toml:"url_expiry"`
	MaxFileSize     string `toml:"max_file_size"`
	maxFileSizeVal  int64
}

// MaxFileSizeBytes returns the parsed maximum file size in bytes.
func (c *StorageConfig) MaxFileSizeBytes() int64 {
	return c.maxFileSizeVal
}

// URLExpiryDuration parses and returns the presigned URL expiry as a time.Duration.
func (c *StorageConfig) URLExpiryDuration() time.Duration {
	d, _ := time.ParseDuration(c.URLExpiry)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the storage configuration.
func (c *StorageConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *StorageConfig) Merge(overlay *StorageConfig) {
	if overlay.Bucket != "" {
		c.Bucket = overlay.Bucket
	}
	if overlay.Region != "" {
		c.Region = overlay.Region
	}
	if overlay.Endpoint != "" {
		c.Endpoint = overlay.Endpoint
	}
	if overlay.AccessKeyID != "" {
		c.AccessKeyID = overlay.AccessKeyID
	}
	if overlay.SecretAccessKey != "" {
		c.SecretAccessKey = overlay.SecretAccessKey
	}
	if overlay.URLExpiry != "" {
		c.URLExpiry = overlay.URLExpiry
	}
	if size, err := units.RAMInBytes(overlay.MaxFileSize); err == nil {
		c.MaxFileSize = overlay.MaxFileSize
		c.maxFileSizeVal = size
	}
}

func (c *StorageConfig) loadDefaults() {
	if c.Region == "" {
		c.Region = "us-east-1"
	}
	if c.URLExpiry == "" {
		c.URLExpiry = "1h"
	}
	if c.MaxFileSize == "" {
		c.MaxFileSize = "10MiB"
	}
}

func (c *StorageConfig) loadEnv() {
	if v := os.Getenv(EnvStorageBucket); v != "" {
		c.Bucket = v
	}
	if v := os.Getenv(EnvStorageRegion); v != "" {
		c.Region = v
	}
	if v := os.Getenv(EnvStorageEndpoint); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv(EnvStorageAccessKeyID); v != "" {
		c.AccessKeyID = v
	}
	if v := os.Getenv(EnvStorageSecretAccessKey); v != "" {
		c.SecretAccessKey = v
	}
	if v := os.Getenv(EnvStorageURLExpiry); v != "" {
		c.URLExpiry = v
	}
	if v := os.Getenv(EnvStorageMaxFileSize); v != "" {
		c.MaxFileSize = v
	}
}

func (c *StorageConfig) validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("bucket required")
	}
	if _, err := time.ParseDuration(c.URLExpiry); err != nil {
		return fmt.Errorf("invalid url_expiry: %w", err)
	}

	size, err := units.RAMInBytes(c.MaxFileSize)
	if err != nil {
		return fmt.Errorf("invalid max_file_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_file_size must be positive")
	}
	c.maxFileSizeVal = size

	return nil
}
