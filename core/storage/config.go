package storage

import (
	"strings"
	"time"
)

// Config locates the bucket holding the asset library.
type Config struct {
	// Endpoint of the S3-compatible service, with or without scheme.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the manifests/ and sources/ trees.
	Bucket string `mapstructure:"bucket" default:"asset-library"`
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds dialing, TLS and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Timeout returns the network timeout, 30s when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// host strips any scheme from Endpoint; minio expects a bare host:port.
func (c Config) host() string {
	return strings.TrimPrefix(strings.TrimPrefix(c.Endpoint, "http://"), "https://")
}
