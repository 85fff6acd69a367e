package importer

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"asset-reconciler/core/asset"
	"asset-reconciler/core/container"

	"github.com/goccy/go-yaml"
)

// Importer produces a staging container from a source file path.
type Importer interface {
	Import(ctx context.Context, path string) (*container.Container, error)
}

// Func adapts a function to the Importer interface.
type Func func(ctx context.Context, path string) (*container.Container, error)

// Import calls f.
func (f Func) Import(ctx context.Context, path string) (*container.Container, error) {
	return f(ctx, path)
}

// Manifest is the on-disk description of one version of a composite asset.
type Manifest struct {
	Name     string            `yaml:"name" json:"name"`
	Elements []ManifestElement `yaml:"elements" json:"elements"`
}

// ManifestElement describes a single element of a Manifest.
type ManifestElement struct {
	Name   string `yaml:"name" json:"name"`
	Kind   string `yaml:"kind" json:"kind"`
	Source string `yaml:"source" json:"source"`
}

// ManifestImporter reads manifests from a Source.
type ManifestImporter struct {
	source Source
}

// NewManifestImporter creates an importer reading from source.
func NewManifestImporter(source Source) *ManifestImporter {
	return &ManifestImporter{source: source}
}

// Import reads and parses the manifest at p.
func (m *ManifestImporter) Import(ctx context.Context, p string) (*container.Container, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc, err := m.source.Open(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return Build(p, manifest)
}

// Build converts a parsed manifest into a staging container with fresh ids.
func Build(p string, manifest Manifest) (*container.Container, error) {
	name := manifest.Name
	if name == "" {
		if id, err := asset.Parse(p); err == nil {
			name = id.BaseName
		} else {
			name = path.Base(toSlash(p))
		}
	}

	c := &container.Container{
		ID:       container.NewID(),
		Name:     name,
		Path:     p,
		Elements: make([]container.Element, 0, len(manifest.Elements)),
	}

	dir := path.Dir(toSlash(p))
	for i, me := range manifest.Elements {
		kind, err := container.ParseKind(me.Kind)
		if err != nil {
			return nil, fmt.Errorf("element %d (%s): %w", i, me.Name, err)
		}

		el := container.Element{
			ID:       container.NewID(),
			Name:     me.Name,
			Kind:     kind,
			Position: i,
		}

		switch kind {
		case container.KindLeaf:
			if me.Source == "" {
				return nil, fmt.Errorf("element %q has no source", me.Name)
			}
			el.SourceRef = resolve(dir, me.Source)
		case container.KindSubContainer:
			if me.Source != "" {
				el.SourceRef = resolve(dir, me.Source)
			}
		}

		c.Elements = append(c.Elements, el)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// resolve joins a relative source onto the manifest directory.
func resolve(dir, source string) string {
	s := toSlash(source)
	if strings.HasPrefix(s, "/") || strings.Contains(s, "://") || (len(s) > 1 && s[1] == ':') {
		return source
	}
	return path.Join(dir, s)
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
