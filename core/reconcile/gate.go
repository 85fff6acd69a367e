package reconcile

import (
	"context"
	"fmt"
	"strings"

	"asset-reconciler/core/container"
	"asset-reconciler/core/errors"
)

// Decision is the verdict of the confirmation gate.
type Decision string

const (
	Accepted Decision = "accepted"
	Rejected Decision = "rejected"
)

// Summary is what a Confirmer is shown before destructive changes.
type Summary struct {
	ContainerID   string   `json:"container_id"`
	ContainerName string   `json:"container_name"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	Added         []string `json:"added"`
	Removed       []string `json:"removed"`
}

// NewSummary describes the diff res of c against the candidate path to.
func NewSummary(c *container.Container, to string, res Result) Summary {
	return Summary{
		ContainerID:   c.ID,
		ContainerName: c.Name,
		From:          c.Path,
		To:            to,
		Added:         res.Added,
		Removed:       res.Removed,
	}
}

// Trivial reports whether the summary has nothing to confirm.
func (s Summary) Trivial() bool {
	return len(s.Added) == 0 && len(s.Removed) == 0
}

// String renders the confirmation message.
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Composition '%s' :\n", s.ContainerName)
	fmt.Fprintf(&b, "- %d element(s) have been deleted.\n", len(s.Removed))
	for _, name := range s.Removed {
		fmt.Fprintf(&b, "    - %s\n", name)
	}
	fmt.Fprintf(&b, "- %d element(s) have been added.\n", len(s.Added))
	for _, name := range s.Added {
		fmt.Fprintf(&b, "    + %s\n", name)
	}
	b.WriteString("Do you want to continue import ?")
	return b.String()
}

// Confirmer approves or refuses a non-trivial diff. Ask may block, typically
// on a human; it should return when ctx is cancelled.
type Confirmer interface {
	Ask(ctx context.Context, s Summary) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, s Summary) (bool, error)

// Ask calls f.
func (f ConfirmFunc) Ask(ctx context.Context, s Summary) (bool, error) {
	return f(ctx, s)
}

// StaticConfirmer always gives the same answer.
type StaticConfirmer struct {
	Accept bool
}

// Ask returns the configured answer.
func (c StaticConfirmer) Ask(context.Context, Summary) (bool, error) {
	return c.Accept, nil
}

// Confirm runs the gate. A trivial summary is accepted without calling c.
// A refusal, a confirmer error or a cancelled ctx all yield Rejected with a
// KindRejected error.
func Confirm(ctx context.Context, c Confirmer, s Summary) (Decision, error) {
	if s.Trivial() {
		return Accepted, nil
	}
	if c == nil {
		return Rejected, errors.Rejected("no confirmer configured", nil)
	}
	if err := ctx.Err(); err != nil {
		return Rejected, errors.Rejected("confirmation cancelled", err)
	}

	type answer struct {
		ok  bool
		err error
	}
	ch := make(chan answer, 1)
	go func() {
		ok, err := c.Ask(ctx, s)
		ch <- answer{ok: ok, err: err}
	}()

	select {
	case <-ctx.Done():
		return Rejected, errors.Rejected("confirmation cancelled", ctx.Err())
	case a := <-ch:
		switch {
		case a.err != nil:
			return Rejected, errors.Rejected("confirmation failed", a.err)
		case !a.ok:
			return Rejected, errors.Rejected("changes refused", nil)
		default:
			return Accepted, nil
		}
	}
}
