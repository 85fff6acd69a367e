package checks

import (
	"context"
	"fmt"
	"path"
	"slices"
	"sort"
	"strings"

	"asset-reconciler/core/asset"
	"asset-reconciler/core/storage"
)

// ManifestPrefix is where versioned layer manifests live in the bucket.
const ManifestPrefix = "manifests/"

// SourcesReport describes the versioned manifests of the library.
type SourcesReport struct {
	// Total is the number of objects inspected.
	Total int `json:"total"`
	// Invalid lists keys whose file name is not <name>.<version>.<extension>.
	Invalid []string `json:"invalid"`
	// Versions maps each asset (<name>.<extension>, with its folder) to its
	// versions in ascending order, numbers compared by value (v9 < v10).
	Versions map[string][]string `json:"versions"`
}

// Latest returns the newest version of an asset, or "".
func (r *SourcesReport) Latest(asset string) string {
	versions := r.Versions[asset]
	if len(versions) == 0 {
		return ""
	}
	return versions[len(versions)-1]
}

// CheckSources lists every manifest and groups them by asset. Folder
// markers are skipped.
func CheckSources(ctx context.Context, client storage.Client, bucket string) (*SourcesReport, error) {
	keys, err := storage.ListKeys(ctx, client, bucket, ManifestPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list manifests: %w", err)
	}

	report := &SourcesReport{
		Invalid:  []string{},
		Versions: make(map[string][]string),
	}
	for _, key := range keys {
		if strings.HasSuffix(key, "/") || path.Base(key) == KeepFile {
			continue
		}
		report.Total++

		id, err := asset.Parse(key)
		if err != nil {
			report.Invalid = append(report.Invalid, key)
			continue
		}
		name := path.Join(path.Dir(key), id.BaseName+"."+id.Extension)
		report.Versions[name] = append(report.Versions[name], id.Version)
	}

	for name := range report.Versions {
		slices.SortFunc(report.Versions[name], asset.CompareVersions)
	}
	sort.Strings(report.Invalid)
	return report, nil
}
