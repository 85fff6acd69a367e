package container

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind tags an Element as a leaf or a sub-container marker.
type Kind string

const (
	// KindLeaf references an external resource through SourceRef.
	KindLeaf Kind = "leaf"
	// KindSubContainer marks a nested container. Markers are structural
	// scaffolding and do not take part in the named diff.
	KindSubContainer Kind = "container"
)

// ParseKind maps a manifest kind to a Kind. An empty value means leaf.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "", KindLeaf:
		return KindLeaf, nil
	case KindSubContainer:
		return KindSubContainer, nil
	default:
		return "", fmt.Errorf("unknown element kind %q", s)
	}
}

// Element is a named member of a Container.
type Element struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Kind      Kind   `json:"kind"`
	SourceRef string `json:"source_ref"`
	Position  int    `json:"position"`
}

// IsLeaf reports whether the element participates in the named diff.
func (e Element) IsLeaf() bool {
	switch e.Kind {
	case KindLeaf:
		return true
	case KindSubContainer:
		return false
	default:
		return false
	}
}

// Container is an ordered, exclusively owned sequence of Elements.
type Container struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Path is the versioned source file currently loaded into the container.
	Path     string    `json:"path"`
	Elements []Element `json:"elements"`
}

// NewID returns a fresh identifier for containers and elements.
func NewID() string {
	return uuid.NewString()
}

// Clone returns a deep copy. Element IDs are preserved.
func (c *Container) Clone() *Container {
	if c == nil {
		return nil
	}
	out := *c
	out.Elements = make([]Element, len(c.Elements))
	copy(out.Elements, c.Elements)
	return &out
}

// Names returns every element name in order.
func (c *Container) Names() []string {
	names := make([]string, len(c.Elements))
	for i, e := range c.Elements {
		names[i] = e.Name
	}
	return names
}

// IDs returns every element id in order.
func (c *Container) IDs() []string {
	ids := make([]string, len(c.Elements))
	for i, e := range c.Elements {
		ids[i] = e.ID
	}
	return ids
}

// Index returns the position of the named element, or -1.
func (c *Container) Index(name string) int {
	for i, e := range c.Elements {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// Element returns the named element.
func (c *Container) Element(name string) (Element, bool) {
	if i := c.Index(name); i >= 0 {
		return c.Elements[i], true
	}
	return Element{}, false
}

// Renumber sets every Position to the element's index.
func (c *Container) Renumber() {
	for i := range c.Elements {
		c.Elements[i].Position = i
	}
}

// Validate checks the committed-container invariants: non-empty, unique names.
func (c *Container) Validate() error {
	seen := make(map[string]struct{}, len(c.Elements))
	for _, e := range c.Elements {
		if e.Name == "" {
			return fmt.Errorf("container %s: element with empty name", c.Name)
		}
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("container %s: duplicate element name %q", c.Name, e.Name)
		}
		seen[e.Name] = struct{}{}
	}
	return nil
}
