package history

import (
	"context"
	"fmt"

	"asset-reconciler/core/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repository reads and writes the journal.
type Repository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRepository creates a repository over db.
func NewRepository(db *gorm.DB, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{db: db, logger: logger}
}

// Migrate creates or updates the journal table.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", Record{}.TableName(), err)
	}
	return nil
}

// Record stores the outcome of a reconcile call.
func (r *Repository) Record(ctx context.Context, out *reconcile.Outcome, err error) error {
	rec := NewRecord(out, err)
	if res := r.db.WithContext(ctx).Create(&rec); res.Error != nil {
		return fmt.Errorf("failed to record reconcile of %s: %w", out.ContainerID, res.Error)
	}
	r.logger.Debug("Reconcile recorded",
		zap.String("record_id", rec.ID),
		zap.String("container_id", rec.ContainerID),
		zap.String("state", rec.State))
	return nil
}

// List returns the newest records first. An empty containerID lists every
// container; limit <= 0 means no limit.
func (r *Repository) List(ctx context.Context, containerID string, limit int) ([]Record, error) {
	q := r.db.WithContext(ctx).Order("started_at desc")
	if containerID != "" {
		q = q.Where("container_id = ?", containerID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var records []Record
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list reconcile records: %w", err)
	}
	return records, nil
}

var _ reconcile.Recorder = (*Repository)(nil)
