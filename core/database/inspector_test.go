package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns_SQLite(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE reconcile_records (id TEXT PRIMARY KEY, container_id TEXT NOT NULL, duration_ms INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "reconcile_records")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	set, err := ColumnSet(db, "reconcile_records")
	require.NoError(t, err)
	assert.Equal(t, "text", set["id"].Type)
	assert.Equal(t, "PRI", set["id"].Key)
	assert.Equal(t, "NO", set["container_id"].Null)
	assert.Equal(t, "integer", set["duration_ms"].Type)

	// PRAGMA table_info returns no rows for a missing table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "VARCHAR(36)", "NO", "PRI", nil, "").
		AddRow("Added", "TEXT", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `reconcile_records`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "reconcile_records")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "varchar(36)", columns[0].Type)
	assert.Equal(t, "added", columns[1].Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}
