package importer

import (
	"fmt"
	"time"

	"asset-reconciler/core/storage"
)

const (
	SourceFS      = "fs"
	SourceStorage = "storage"
)

// Config selects where manifests are read from.
type Config struct {
	// Source is fs (local files) or storage (the object storage bucket).
	Source string `mapstructure:"source" default:"fs"`
	// Root confines fs paths to a directory. Empty means unrestricted.
	Root string `mapstructure:"root" default:""`
	// CacheTTLSeconds caches parsed manifests. 0 disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"0"`
}

// New builds the importer described by cfg. client is only required for
// the storage source.
func New(cfg Config, client storage.Client, bucket string) (Importer, error) {
	var source Source
	switch cfg.Source {
	case SourceFS, "":
		source = NewFSSource(cfg.Root)
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("storage manifest source requires a storage client")
		}
		source = &StorageSource{Client: client, Bucket: bucket}
	default:
		return nil, fmt.Errorf("unknown manifest source %q", cfg.Source)
	}

	var imp Importer = NewManifestImporter(source)
	if cfg.CacheTTLSeconds > 0 {
		imp = NewCachedImporter(imp, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	}
	return imp, nil
}
