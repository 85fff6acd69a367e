package history

import (
	"strings"
	"time"

	"asset-reconciler/core/errors"
	"asset-reconciler/core/reconcile"

	"github.com/google/uuid"
)

// Record is one journal entry.
type Record struct {
	ID          string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	ContainerID string    `gorm:"column:container_id;type:varchar(64);index" json:"container_id"`
	FromPath    string    `gorm:"column:from_path;type:varchar(1024)" json:"from_path"`
	ToPath      string    `gorm:"column:to_path;type:varchar(1024)" json:"to_path"`
	State       string    `gorm:"column:state;type:varchar(32)" json:"state"`
	FailedAt    string    `gorm:"column:failed_at;type:varchar(32)" json:"failed_at,omitempty"`
	Prompted    bool      `gorm:"column:prompted" json:"prompted"`
	ErrorKind   string    `gorm:"column:error_kind;type:varchar(32)" json:"error_kind,omitempty"`
	Message     string    `gorm:"column:message;type:text" json:"message,omitempty"`
	Added       string    `gorm:"column:added;type:text" json:"-"`
	Removed     string    `gorm:"column:removed;type:text" json:"-"`
	StartedAt   time.Time `gorm:"column:started_at;type:datetime;index" json:"started_at"`
	DurationMs  int64     `gorm:"column:duration_ms;type:bigint" json:"duration_ms"`
}

// TableName pins the journal table name.
func (Record) TableName() string {
	return "reconcile_records"
}

// NewRecord converts an outcome and its error into a journal entry.
func NewRecord(out *reconcile.Outcome, err error) Record {
	rec := Record{
		ID:          uuid.NewString(),
		ContainerID: out.ContainerID,
		FromPath:    out.From,
		ToPath:      out.To,
		State:       string(out.State),
		FailedAt:    string(out.FailedAt),
		Prompted:    out.Prompted,
		Added:       strings.Join(out.Added, "\n"),
		Removed:     strings.Join(out.Removed, "\n"),
		StartedAt:   out.StartedAt,
		DurationMs:  out.Duration.Milliseconds(),
	}
	if err != nil {
		rec.ErrorKind = string(errors.KindOf(err))
		rec.Message = err.Error()
	}
	return rec
}

// AddedNames returns the names added by the call.
func (r Record) AddedNames() []string {
	return split(r.Added)
}

// RemovedNames returns the names removed by the call.
func (r Record) RemovedNames() []string {
	return split(r.Removed)
}

func split(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
