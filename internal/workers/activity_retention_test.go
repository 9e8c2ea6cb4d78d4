package workers

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockedWorker(t *testing.T) (*ActivityRetentionWorker, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	return &ActivityRetentionWorker{DB: gormDB, RetentionDays: 90}, mock
}

// TestPurgeExpired_BatchesUntilDrained verifies the purge keeps deleting
// full batches and stops on the first short one.
func TestPurgeExpired_BatchesUntilDrained(t *testing.T) {
	worker, mock := newMockedWorker(t)

	mock.ExpectExec(`DELETE FROM admin_activity_logs`).
		WithArgs(sqlmock.AnyArg(), 1000).
		WillReturnResult(sqlmock.NewResult(0, 1000))
	mock.ExpectExec(`DELETE FROM admin_activity_logs`).
		WithArgs(sqlmock.AnyArg(), 1000).
		WillReturnResult(sqlmock.NewResult(0, 240))

	purged, err := worker.purgeExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1240), purged)
	require.NoError(t, mock.ExpectationsWereMet())
}

// TestPurgeExpired_NothingToPurge stops after one empty batch.
func TestPurgeExpired_NothingToPurge(t *testing.T) {
	worker, mock := newMockedWorker(t)

	mock.ExpectExec(`DELETE FROM admin_activity_logs`).
		WithArgs(sqlmock.AnyArg(), 1000).
		WillReturnResult(sqlmock.NewResult(0, 0))

	purged, err := worker.purgeExpired(context.Background())
	require.NoError(t, err)
	assert.Zero(t, purged)
}

// TestPurgeExpired_StoreErrorStops reports rows purged so far alongside
// the error.
func TestPurgeExpired_StoreErrorStops(t *testing.T) {
	worker, mock := newMockedWorker(t)

	mock.ExpectExec(`DELETE FROM admin_activity_logs`).
		WithArgs(sqlmock.AnyArg(), 1000).
		WillReturnResult(sqlmock.NewResult(0, 1000))
	mock.ExpectExec(`DELETE FROM admin_activity_logs`).
		WithArgs(sqlmock.AnyArg(), 1000).
		WillReturnError(errors.New("connection reset"))

	purged, err := worker.purgeExpired(context.Background())
	require.Error(t, err)
	assert.Equal(t, int64(1000), purged)
}

// TestPurgeExpired_CancelledContext returns without touching the store.
func TestPurgeExpired_CancelledContext(t *testing.T) {
	worker, mock := newMockedWorker(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	purged, err := worker.purgeExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, purged)
	require.NoError(t, mock.ExpectationsWereMet())
}
