package integrity

import (
	"context"
	"testing"

	"asset-reconciler/core/database"
	"asset-reconciler/core/storage/mocks"
	"asset-reconciler/feature/history"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
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

func emptyObjects() <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", zap.NewNop(), nil)

	t.Run("CheckStructure", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(emptyObjects)

		missing, err := svc.CheckStructure(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"manifests", "sources"}, missing)
	})

	t.Run("FixStructure", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "test-bucket", "sources/.keep", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
		err := svc.FixStructure(context.Background(), []string{"sources"})
		assert.NoError(t, err)
	})
}

func TestService_Sources(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", zap.NewNop(), nil)

	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
		Return(mocks.Objects("manifests/bg.v001.yaml", "manifests/bg.yaml"))

	report, err := svc.CheckSources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"manifests/bg.yaml"}, report.Invalid)
	assert.Equal(t, "v001", report.Latest("manifests/bg.yaml"))
}

func TestService_Journal(t *testing.T) {
	t.Run("No Database", func(t *testing.T) {
		svc := NewService(new(mocks.Client), "test-bucket", zap.NewNop(), nil)
		_, err := svc.CheckJournal()
		assert.Error(t, err)
	})

	t.Run("Migrated", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		require.NoError(t, history.NewRepository(db, nil).Migrate())

		svc := NewService(new(mocks.Client), "test-bucket", zap.NewNop(), db)
		report, err := svc.CheckJournal()
		require.NoError(t, err)
		assert.True(t, report.Matched)
	})
}

func TestService_RunAll(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, history.NewRepository(db, nil).Migrate())

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
		Return(func(_ context.Context, _ string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			switch opts.Prefix {
			case "manifests/":
				return mocks.Objects("manifests/.keep", "manifests/bg.v001.yaml", "manifests/bg")
			default:
				return mocks.Objects(opts.Prefix + ".keep")
			}
		})

	svc := NewService(mockClient, "test-bucket", zap.NewNop(), db)
	report := svc.RunAll(context.Background())

	assert.Equal(t, "ok", report.Structure.Status)
	assert.Equal(t, "issues", report.Sources.Status)
	assert.Equal(t, "ok", report.Journal.Status)
	assert.Empty(t, report.Journal.Error)
}
