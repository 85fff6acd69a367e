package container

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"asset-reconciler/core/errors"
)

// Session owns the Containers of one authoring session.
type Session struct {
	mu         sync.RWMutex
	containers map[string]*Container
	// owners maps a container id to the token of the open Tx holding it.
	owners map[string]string
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{
		containers: make(map[string]*Container),
		owners:     make(map[string]string),
	}
}

// Add registers a copy of c. It fails if c is invalid or its id is taken.
func (s *Session) Add(c *Container) error {
	if c == nil || c.ID == "" {
		return fmt.Errorf("container must have an id")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.containers[c.ID]; exists {
		return fmt.Errorf("container %s already registered", c.ID)
	}
	stored := c.Clone()
	stored.Renumber()
	s.containers[c.ID] = stored
	return nil
}

// Get returns a copy of the committed container.
func (s *Session) Get(id string) (*Container, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.containers[id]
	if !ok {
		return nil, errors.NotFound("container", id)
	}
	return c.Clone(), nil
}

// List returns copies of every committed container ordered by name, then id.
func (s *Session) List() []*Container {
	s.mu.RLock()
	out := make([]*Container, 0, len(s.containers))
	for _, c := range s.containers {
		out = append(out, c.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Remove deletes a container that no Tx currently holds.
func (s *Session) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.containers[id]; !ok {
		return errors.NotFound("container", id)
	}
	if _, held := s.owners[id]; held {
		return errors.Busy(id)
	}
	delete(s.containers, id)
	return nil
}

// Busy reports whether a Tx currently holds the container.
func (s *Session) Busy(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, held := s.owners[id]
	return held
}

// Begin acquires exclusive ownership of the container and returns a Tx with
// a private working copy. It never waits: a held container yields Busy.
func (s *Session) Begin(ctx context.Context, id string) (*Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.containers[id]
	if !ok {
		return nil, errors.NotFound("container", id)
	}
	if _, held := s.owners[id]; held {
		return nil, errors.Busy(id)
	}

	token := NewID()
	s.owners[id] = token
	return &Tx{
		session:  s,
		id:       id,
		token:    token,
		snapshot: c.Clone(),
		working:  c.Clone(),
	}, nil
}

// release drops ownership if token still holds it. Callers hold s.mu.
func (s *Session) release(id, token string) {
	if s.owners[id] == token {
		delete(s.owners, id)
	}
}

// Tx is one exclusive edit of a container. It is not safe for concurrent use.
type Tx struct {
	session  *Session
	id       string
	token    string
	snapshot *Container
	working  *Container
	done     bool
}

// ID returns the id of the container being edited.
func (tx *Tx) ID() string {
	return tx.id
}

// Working returns the private copy edits are staged on.
func (tx *Tx) Working() *Container {
	return tx.working
}

// Snapshot returns a copy of the container as it was when the Tx began.
func (tx *Tx) Snapshot() *Container {
	return tx.snapshot.Clone()
}

// Done reports whether the Tx was committed or rolled back.
func (tx *Tx) Done() bool {
	return tx.done
}

// Commit validates the working copy and makes it the committed container in
// a single step, then releases ownership. On a validation error the Tx is
// rolled back and the committed container is left unchanged.
func (tx *Tx) Commit() error {
	if tx.done {
		return fmt.Errorf("transaction on container %s already finished", tx.id)
	}

	s := tx.session
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.release(tx.id, tx.token)
	tx.done = true

	if err := tx.working.Validate(); err != nil {
		return err
	}
	tx.working.ID = tx.id
	tx.working.Renumber()
	s.containers[tx.id] = tx.working
	tx.working = tx.working.Clone()
	return nil
}

// Rollback discards the working copy and releases ownership. It is a no-op
// once the Tx is finished, so it is safe to defer.
func (tx *Tx) Rollback() {
	if tx.done {
		return
	}
	s := tx.session
	s.mu.Lock()
	defer s.mu.Unlock()
	s.release(tx.id, tx.token)
	tx.done = true
	tx.working = tx.snapshot.Clone()
}
