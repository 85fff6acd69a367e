package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"asset-reconciler/core/database"
	"asset-reconciler/core/errors"
	"asset-reconciler/core/reconcile"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *Repository {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	repo := NewRepository(db, zap.NewNop())
	require.NoError(t, repo.Migrate())
	return repo
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func outcome(id string, started time.Time, state reconcile.State) *reconcile.Outcome {
	return &reconcile.Outcome{
		ContainerID: id,
		From:        "/shots/bg.v001.yaml",
		To:          "/shots/bg.v002.yaml",
		Added:       []string{"D", "E"},
		Removed:     []string{"B"},
		Matched:     []string{"A"},
		State:       state,
		Prompted:    true,
		StartedAt:   started,
		Duration:    1500 * time.Millisecond,
	}
}

func TestNewRecord(t *testing.T) {
	out := outcome("c1", time.Now(), reconcile.StateRolledBack)
	out.FailedAt = reconcile.StateConfirming
	rec := NewRecord(out, errors.Rejected("changes refused", nil))

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "rolled_back", rec.State)
	assert.Equal(t, "confirming", rec.FailedAt)
	assert.Equal(t, "rejected", rec.ErrorKind)
	assert.Contains(t, rec.Message, "changes refused")
	assert.Equal(t, []string{"D", "E"}, rec.AddedNames())
	assert.Equal(t, []string{"B"}, rec.RemovedNames())
	assert.Equal(t, int64(1500), rec.DurationMs)

	empty := NewRecord(&reconcile.Outcome{}, nil)
	assert.Equal(t, []string{}, empty.AddedNames())
	assert.Empty(t, empty.ErrorKind)
}

func TestRepository_SQLite(t *testing.T) {
	repo := setupSQLite(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Record(ctx, outcome("c1", base, reconcile.StateCommitted), nil))
	require.NoError(t, repo.Record(ctx, outcome("c1", base.Add(time.Minute), reconcile.StateRolledBack), errors.Busy("c1")))
	require.NoError(t, repo.Record(ctx, outcome("c2", base.Add(2*time.Minute), reconcile.StateCommitted), nil))

	records, err := repo.List(ctx, "c1", 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "rolled_back", records[0].State, "newest first")
	assert.Equal(t, "busy", records[0].ErrorKind)
	assert.Equal(t, "committed", records[1].State)
	assert.Equal(t, []string{"D", "E"}, records[1].AddedNames())

	all, err := repo.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	limited, err := repo.List(ctx, "", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "c2", limited[0].ContainerID)
}

func TestRepository_RecordMySQL(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db, nil)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `reconcile_records`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Record(context.Background(), outcome("c1", time.Now(), reconcile.StateCommitted), nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RecordMySQLError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db, nil)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `reconcile_records`").WillReturnError(fmt.Errorf("disk full"))
	mock.ExpectRollback()

	err := repo.Record(context.Background(), outcome("c1", time.Now(), reconcile.StateCommitted), nil)
	assert.ErrorContains(t, err, "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListMySQL(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db, nil)

	rows := sqlmock.NewRows([]string{"id", "container_id", "state", "added"}).
		AddRow("r1", "c1", "committed", "D")
	mock.ExpectQuery("SELECT \\* FROM `reconcile_records` WHERE container_id = \\? ORDER BY started_at desc").
		WillReturnRows(rows)

	records, err := repo.List(context.Background(), "c1", 5)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"D"}, records[0].AddedNames())
	assert.NoError(t, mock.ExpectationsWereMet())
}
