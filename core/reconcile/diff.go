package reconcile

import (
	"asset-reconciler/core/container"
)

// Diff compares the leaf elements of current and incoming by name.
// Sub-container markers are skipped. The output is deterministic: lists
// follow the order of the container they come from.
func Diff(current, incoming *container.Container) Result {
	currentIndex := leafIndex(current)
	incomingIndex := leafIndex(incoming)

	res := Result{
		Added:   []string{},
		Removed: []string{},
		Matched: []MatchedPair{},
	}

	// Matched and removed, in current order
	seen := make(map[string]struct{}, len(currentIndex))
	for _, el := range current.Elements {
		if !el.IsLeaf() {
			continue
		}
		if _, dup := seen[el.Name]; dup {
			continue
		}
		seen[el.Name] = struct{}{}

		if in, ok := incomingIndex[el.Name]; ok {
			res.Matched = append(res.Matched, MatchedPair{Current: currentIndex[el.Name], Incoming: in})
		} else {
			res.Removed = append(res.Removed, el.Name)
		}
	}

	// Added, in incoming order
	seen = make(map[string]struct{}, len(incomingIndex))
	for _, el := range incoming.Elements {
		if !el.IsLeaf() {
			continue
		}
		if _, dup := seen[el.Name]; dup {
			continue
		}
		seen[el.Name] = struct{}{}

		if _, ok := currentIndex[el.Name]; !ok {
			res.Added = append(res.Added, el.Name)
		}
	}

	return res
}

// leafIndex maps leaf names to their first element.
func leafIndex(c *container.Container) map[string]container.Element {
	index := make(map[string]container.Element, len(c.Elements))
	for _, el := range c.Elements {
		if !el.IsLeaf() {
			continue
		}
		if _, exists := index[el.Name]; !exists {
			index[el.Name] = el
		}
	}
	return index
}
