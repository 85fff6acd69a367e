package reconcile

import (
	"fmt"
	"time"

	"asset-reconciler/core/container"
)

// MatchedPair links an element of the current container to the incoming
// element carrying the same name.
type MatchedPair struct {
	Current  container.Element `json:"current"`
	Incoming container.Element `json:"incoming"`
}

// Result is the structural diff of two containers. Added, Removed and the
// names of Matched partition the union of both containers' leaf names.
type Result struct {
	// Added holds incoming-only names in incoming order.
	Added []string `json:"added"`
	// Removed holds current-only names in current order.
	Removed []string `json:"removed"`
	// Matched holds the pairs present in both, in current order.
	Matched []MatchedPair `json:"matched"`
}

// Empty reports whether the diff leaves the structure unchanged.
func (r Result) Empty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0
}

// MatchedNames returns the names of the matched pairs.
func (r Result) MatchedNames() []string {
	names := make([]string, len(r.Matched))
	for i, p := range r.Matched {
		names[i] = p.Current.Name
	}
	return names
}

// Names returns every name the result covers: removed, matched, then added.
func (r Result) Names() []string {
	names := make([]string, 0, len(r.Added)+len(r.Removed)+len(r.Matched))
	names = append(names, r.Removed...)
	names = append(names, r.MatchedNames()...)
	names = append(names, r.Added...)
	return names
}

// State is a stage of a reconcile call.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateImporting  State = "importing"
	StateDiffing    State = "diffing"
	StateConfirming State = "confirming"
	StateApplying   State = "applying"
	StateCommitted  State = "committed"
	StateRolledBack State = "rolled_back"
	// StatePlanned ends a dry run: the diff was computed and discarded.
	StatePlanned State = "planned"
)

// Placement controls where added elements are inserted.
type Placement string

const (
	// PlaceAppend appends added elements after the survivors, in incoming order.
	PlaceAppend Placement = "append"
	// PlaceAnchored inserts each added element next to its incoming neighbours.
	PlaceAnchored Placement = "anchored"
)

// ParsePlacement validates a configured placement. Empty means PlaceAppend.
func ParsePlacement(s string) (Placement, error) {
	switch Placement(s) {
	case "", PlaceAppend:
		return PlaceAppend, nil
	case PlaceAnchored:
		return PlaceAnchored, nil
	default:
		return "", fmt.Errorf("unknown placement %q (want %s or %s)", s, PlaceAppend, PlaceAnchored)
	}
}

// Outcome reports a reconcile call. It is returned on failure as well, with
// State set to StateRolledBack and FailedAt naming the stage that failed.
type Outcome struct {
	ContainerID string `json:"container_id"`
	// From is the source path loaded before the call.
	From string `json:"from"`
	// To is the candidate source path.
	To      string   `json:"to"`
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
	Matched []string `json:"matched"`
	State   State    `json:"state"`
	// FailedAt is the last stage entered before a rollback.
	FailedAt State `json:"failed_at,omitempty"`
	// Prompted is true when the confirmer was asked.
	Prompted  bool          `json:"prompted"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

func (o *Outcome) fill(res Result) {
	o.Added = res.Added
	o.Removed = res.Removed
	o.Matched = res.MatchedNames()
}
