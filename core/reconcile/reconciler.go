package reconcile

import (
	"context"
	"fmt"
	"time"

	"asset-reconciler/core/asset"
	"asset-reconciler/core/container"
	"asset-reconciler/core/errors"
	"asset-reconciler/core/importer"

	"go.uber.org/zap"
)

// Recorder persists the outcome of every reconcile call. err is nil on commit.
type Recorder interface {
	Record(ctx context.Context, outcome *Outcome, err error) error
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithLogger sets the logger used for stage transitions.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Reconciler) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithRecorder sets the journal outcomes are written to.
func WithRecorder(rec Recorder) Option {
	return func(r *Reconciler) {
		r.recorder = rec
	}
}

// WithPlacement sets where added elements are inserted.
func WithPlacement(p Placement) Option {
	return func(r *Reconciler) {
		r.placement = p
	}
}

// Reconciler drives reconcile calls against the containers of a Session.
type Reconciler struct {
	session   *container.Session
	importer  importer.Importer
	confirmer Confirmer
	logger    *zap.Logger
	recorder  Recorder
	placement Placement
}

// New creates a Reconciler. confirmer may be nil, in which case any
// non-trivial diff is rejected.
func New(session *container.Session, imp importer.Importer, confirmer Confirmer, opts ...Option) *Reconciler {
	r := &Reconciler{
		session:   session,
		importer:  imp,
		confirmer: confirmer,
		logger:    zap.NewNop(),
		placement: PlaceAppend,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Session returns the session the reconciler edits.
func (r *Reconciler) Session() *container.Session {
	return r.session
}

// Load imports the file at path and registers it as a new container.
func (r *Reconciler) Load(ctx context.Context, path string) (*container.Container, error) {
	if _, err := asset.Parse(path); err != nil {
		return nil, errors.IdentityMismatch("cannot load %s: %v", path, err)
	}
	c, err := r.importer.Import(ctx, path)
	if err != nil {
		return nil, errors.Import(path, err)
	}
	if c.ID == "" {
		c.ID = container.NewID()
	}
	c.Path = path
	if err := r.session.Add(c); err != nil {
		return nil, errors.Import(path, err)
	}

	r.logger.Info("Container loaded",
		zap.String("container_id", c.ID),
		zap.String("name", c.Name),
		zap.String("path", path),
		zap.Int("elements", len(c.Elements)))
	return r.session.Get(c.ID)
}

// Reconcile updates container id to the version at path using the default
// confirmer. The Outcome is returned on failure too.
func (r *Reconciler) Reconcile(ctx context.Context, id, path string) (*Outcome, error) {
	return r.run(ctx, id, path, r.confirmer, false)
}

// ReconcileWith is Reconcile with a per-call confirmer.
func (r *Reconciler) ReconcileWith(ctx context.Context, id, path string, confirmer Confirmer) (*Outcome, error) {
	return r.run(ctx, id, path, confirmer, false)
}

// Plan validates, imports and diffs without confirming or applying. The
// container is held for the duration of the call like a real reconcile.
func (r *Reconciler) Plan(ctx context.Context, id, path string) (*Outcome, error) {
	return r.run(ctx, id, path, nil, true)
}

func (r *Reconciler) run(ctx context.Context, id, path string, confirmer Confirmer, dryRun bool) (*Outcome, error) {
	out := &Outcome{
		ContainerID: id,
		To:          path,
		State:       StateIdle,
		StartedAt:   time.Now(),
	}
	log := r.logger.With(zap.String("container_id", id), zap.String("path", path))

	tx, err := r.session.Begin(ctx, id)
	if err != nil {
		// A request cancelled before it got the container never reaches a
		// stage; it is reported like a cancelled import.
		if errors.KindOf(err) == "" {
			err = errors.Import(path, err)
		}
		return r.finish(ctx, log, out, err, dryRun)
	}
	defer tx.Rollback()

	err = r.attempt(ctx, log, tx, out, path, confirmer, dryRun)
	// Release the container before the journal write.
	tx.Rollback()
	return r.finish(ctx, log, out, err, dryRun)
}

// attempt runs the stages on the working copy of tx and commits it. Any
// error leaves tx open for the caller to roll back.
func (r *Reconciler) attempt(ctx context.Context, log *zap.Logger, tx *container.Tx, out *Outcome, path string, confirmer Confirmer, dryRun bool) error {
	working := tx.Working()
	out.From = working.Path

	r.enter(log, out, StateValidating)
	if err := asset.Validate(working.Path, path); err != nil {
		return err
	}

	r.enter(log, out, StateImporting)
	incoming, err := r.importer.Import(ctx, path)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return errors.Import(path, err)
	}

	r.enter(log, out, StateDiffing)
	res := Diff(working, incoming)
	out.fill(res)

	if dryRun {
		out.State = StatePlanned
		return nil
	}

	r.enter(log, out, StateConfirming)
	summary := NewSummary(working, path, res)
	out.Prompted = !summary.Trivial()
	if _, err := Confirm(ctx, confirmer, summary); err != nil {
		return err
	}

	// No cancellation checks past this point: an accepted change is applied.
	r.enter(log, out, StateApplying)
	if err := Apply(working, incoming, res, r.placement); err != nil {
		return err
	}
	working.Path = path
	if err := tx.Commit(); err != nil {
		return &errors.Error{Kind: errors.KindApply, Message: "commit rejected", Err: err}
	}

	out.State = StateCommitted
	return nil
}

func (r *Reconciler) enter(log *zap.Logger, out *Outcome, s State) {
	out.State = s
	log.Debug("Reconcile stage", zap.String("state", string(s)))
}

func (r *Reconciler) finish(ctx context.Context, log *zap.Logger, out *Outcome, err error, dryRun bool) (*Outcome, error) {
	out.Duration = time.Since(out.StartedAt)
	if err != nil {
		out.FailedAt = out.State
		out.State = StateRolledBack
		log.Warn("Reconcile rolled back",
			zap.String("failed_at", string(out.FailedAt)),
			zap.String("kind", string(errors.KindOf(err))),
			zap.Error(err))
	} else {
		log.Info("Reconcile finished",
			zap.String("state", string(out.State)),
			zap.Int("added", len(out.Added)),
			zap.Int("removed", len(out.Removed)),
			zap.Int("matched", len(out.Matched)),
			zap.Duration("duration", out.Duration))
	}

	if r.recorder != nil && !dryRun {
		if recErr := r.recorder.Record(context.WithoutCancel(ctx), out, err); recErr != nil {
			log.Error("Failed to record reconcile outcome", zap.Error(recErr))
		}
	}
	return out, err
}

// String renders a one-line description of the outcome.
func (o *Outcome) String() string {
	return fmt.Sprintf("%s %s -> %s: %s (+%d -%d =%d)",
		o.ContainerID, o.From, o.To, o.State, len(o.Added), len(o.Removed), len(o.Matched))
}
