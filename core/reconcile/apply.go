package reconcile

import (
	"slices"

	"asset-reconciler/core/container"
	"asset-reconciler/core/errors"
)

// Apply edits working so its leaves match incoming, following res:
// matched elements get the incoming source, removed ones are dropped and
// added ones are inserted according to placement. Matched elements keep
// their identity and sub-container markers are never touched.
//
// PlaceAppend puts added elements after every survivor, in incoming order,
// so the result is the surviving current order followed by the additions.
// PlaceAnchored instead moves each added element next to the incoming
// sibling that precedes it, as the host editor does when it copies a layer
// into the composition and moves it after its neighbour.
//
// working is edited in place and must be discarded when Apply fails.
func Apply(working, incoming *container.Container, res Result, placement Placement) error {
	for _, pair := range res.Matched {
		name := pair.Current.Name
		i := working.Index(name)
		if i < 0 || !working.Elements[i].IsLeaf() {
			return errors.Apply(name, "matched element is missing from the container")
		}
		in, ok := leaf(incoming, name)
		if !ok {
			return errors.Apply(name, "matched element is missing from the incoming version")
		}
		if in.SourceRef == "" {
			return errors.Apply(name, "incoming element has no source")
		}
		working.Elements[i].SourceRef = in.SourceRef
	}

	if len(res.Removed) > 0 {
		drop := make(map[string]struct{}, len(res.Removed))
		for _, name := range res.Removed {
			i := working.Index(name)
			if i < 0 || !working.Elements[i].IsLeaf() {
				return errors.Apply(name, "removed element is missing from the container")
			}
			drop[name] = struct{}{}
		}
		working.Elements = slices.DeleteFunc(working.Elements, func(el container.Element) bool {
			_, ok := drop[el.Name]
			return ok && el.IsLeaf()
		})
	}

	for _, name := range res.Added {
		in, ok := leaf(incoming, name)
		if !ok {
			return errors.Apply(name, "added element is missing from the incoming version")
		}
		if in.SourceRef == "" {
			return errors.Apply(name, "incoming element has no source")
		}
		if working.Index(name) >= 0 {
			return errors.Apply(name, "name collides with an existing element")
		}

		el := in
		el.ID = container.NewID()
		at := len(working.Elements)
		if placement == PlaceAnchored {
			at = anchor(working, incoming, name)
		}
		working.Elements = slices.Insert(working.Elements, at, el)
	}

	working.Renumber()
	return nil
}

// anchor returns the index in working where the incoming element name goes:
// right after its nearest preceding incoming sibling already in working,
// else right before its nearest following one, else at the end.
func anchor(working, incoming *container.Container, name string) int {
	idx := incoming.Index(name)
	for i := idx - 1; i >= 0; i-- {
		if at := working.Index(incoming.Elements[i].Name); at >= 0 {
			return at + 1
		}
	}
	for i := idx + 1; i < len(incoming.Elements); i++ {
		if at := working.Index(incoming.Elements[i].Name); at >= 0 {
			return at
		}
	}
	return len(working.Elements)
}

// leaf returns the first leaf of c called name.
func leaf(c *container.Container, name string) (container.Element, bool) {
	for _, el := range c.Elements {
		if el.Name == name && el.IsLeaf() {
			return el, true
		}
	}
	return container.Element{}, false
}
