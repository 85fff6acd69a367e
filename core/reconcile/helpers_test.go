package reconcile

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"asset-reconciler/core/container"
	"asset-reconciler/core/importer"

	"github.com/stretchr/testify/require"
)

// build makes a container from specs like "A=a.png" (leaf) or "[fx]" (marker).
func build(id, path string, specs ...string) *container.Container {
	c := &container.Container{ID: id, Name: "comp", Path: path}
	for _, s := range specs {
		if strings.HasPrefix(s, "[") {
			c.Elements = append(c.Elements, container.Element{
				ID:   container.NewID(),
				Name: strings.Trim(s, "[]"),
				Kind: container.KindSubContainer,
			})
			continue
		}
		name, src, _ := strings.Cut(s, "=")
		c.Elements = append(c.Elements, container.Element{
			ID:        container.NewID(),
			Name:      name,
			Kind:      container.KindLeaf,
			SourceRef: src,
		})
	}
	c.Renumber()
	return c
}

// layout renders "name=src" for leaves and "[name]" for markers, in order.
func layout(c *container.Container) []string {
	out := make([]string, len(c.Elements))
	for i, el := range c.Elements {
		if el.IsLeaf() {
			out[i] = el.Name + "=" + el.SourceRef
		} else {
			out[i] = "[" + el.Name + "]"
		}
	}
	return out
}

// fakeImporter serves fixed containers by path.
type fakeImporter struct {
	mu    sync.Mutex
	files map[string]*container.Container
	calls int
}

func (f *fakeImporter) Import(_ context.Context, path string) (*container.Container, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	c, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: file does not exist", path)
	}
	return c.Clone(), nil
}

var _ importer.Importer = (*fakeImporter)(nil)

func newFixture(t *testing.T, confirmer Confirmer, files map[string]*container.Container, opts ...Option) (*Reconciler, *container.Session) {
	t.Helper()
	session := container.NewSession()
	for path, c := range files {
		if strings.Contains(path, ".v001.") {
			loaded := c.Clone()
			loaded.Path = path
			require.NoError(t, session.Add(loaded))
		}
	}
	return New(session, &fakeImporter{files: files}, confirmer, opts...), session
}

// importCalls reports how many times r asked its fakeImporter for a file.
func importCalls(r *Reconciler) int {
	f := r.importer.(*fakeImporter)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
