package checks

import (
	"context"
	"fmt"
	"strings"

	"asset-reconciler/core/storage"

	"go.uber.org/zap"
)

// RequiredFolders lists the folders that must exist in the asset library bucket.
var RequiredFolders = []string{"manifests", "sources"}

// KeepFile is the empty object materializing a folder.
const KeepFile = ".keep"

// CheckStructure returns a list of missing folders.
func CheckStructure(ctx context.Context, client storage.Client, bucket string) ([]string, error) {
	missing := []string{}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, folder := range RequiredFolders {
		found, err := storage.HasPrefix(ctx, client, bucket, folderPrefix(folder))
		if err != nil {
			return nil, fmt.Errorf("failed to check folder %s: %w", folder, err)
		}
		if !found {
			missing = append(missing, folder)
		}
	}

	return missing, nil
}

// FixStructure creates the missing folders.
func FixStructure(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	for _, folder := range missing {
		if err := storage.PutMarker(ctx, client, bucket, folderPrefix(folder)+KeepFile); err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}

func folderPrefix(folder string) string {
	if !strings.HasSuffix(folder, "/") {
		folder += "/"
	}
	return folder
}
