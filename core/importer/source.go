package importer

import (
	"context"
	"io"
	"strings"

	"asset-reconciler/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
)

// Source opens manifest files by path.
type Source interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// FSSource reads manifests from an afero filesystem.
type FSSource struct {
	Fs afero.Fs
}

// NewFSSource returns a Source over the OS filesystem. A non-empty root
// confines every path beneath it.
func NewFSSource(root string) *FSSource {
	var fs afero.Fs = afero.NewOsFs()
	if root != "" {
		fs = afero.NewBasePathFs(fs, root)
	}
	return &FSSource{Fs: fs}
}

// Open implements Source.
func (s *FSSource) Open(_ context.Context, path string) (io.ReadCloser, error) {
	return s.Fs.Open(path)
}

// StorageSource reads manifests from object storage. The path is the object
// key; a leading slash is ignored.
type StorageSource struct {
	Client storage.Client
	Bucket string
}

// Open implements Source.
func (s *StorageSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	key := strings.TrimPrefix(toSlash(path), "/")
	return s.Client.GetObject(ctx, s.Bucket, key, minio.GetObjectOptions{})
}
