package reconcile

import (
	"context"
	"time"

	"asset-reconciler/core/container"
	"asset-reconciler/core/errors"
	"asset-reconciler/core/reconcile"
	"asset-reconciler/feature/history"

	"go.uber.org/zap"
)

// Service wraps the Reconciler for HTTP use.
type Service struct {
	reconciler *reconcile.Reconciler
	history    *history.Repository
	logger     *zap.Logger
	timeout    time.Duration
}

// NewService creates a new service. hist may be nil when no journal
// database is configured.
func NewService(r *reconcile.Reconciler, hist *history.Repository, logger *zap.Logger, timeout time.Duration) *Service {
	return &Service{
		reconciler: r,
		history:    hist,
		logger:     logger,
		timeout:    timeout,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// List returns every loaded container.
func (s *Service) List() []*container.Container {
	return s.reconciler.Session().List()
}

// Get returns one container.
func (s *Service) Get(id string) (*container.Container, error) {
	return s.reconciler.Session().Get(id)
}

// Load imports path as a new container.
func (s *Service) Load(ctx context.Context, path string) (*container.Container, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.reconciler.Load(ctx, path)
}

// Plan diffs container id against path.
func (s *Service) Plan(ctx context.Context, id, path string) (*reconcile.Outcome, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.reconciler.Plan(ctx, id, path)
}

// Reconcile updates container id to path. confirm answers the gate.
func (s *Service) Reconcile(ctx context.Context, id, path string, confirm bool) (*reconcile.Outcome, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.reconciler.ReconcileWith(ctx, id, path, reconcile.StaticConfirmer{Accept: confirm})
}

// History lists journal records of container id.
func (s *Service) History(ctx context.Context, id string, limit int) ([]history.Record, error) {
	if s.history == nil {
		return nil, errors.NotFound("journal", "history")
	}
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	return s.history.List(ctx, id, limit)
}
