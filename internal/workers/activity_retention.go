package workers

import (
	"context"
	"time"

	"api/internal/configuration"

	"gorm.io/gorm"
)

// ActivityRetentionWorker purges admin audit rows older than the
// configured retention window. Deletion happens in bounded batches so a
// large backlog never holds long row locks.
type ActivityRetentionWorker struct {
	DB            *gorm.DB
	RetentionDays int
	RunInterval   time.Duration
}

// Start begins the retention loop. It runs an immediate purge on
// startup, then repeats on the configured interval until ctx is
// cancelled.
func (w *ActivityRetentionWorker) Start(ctx context.Context) {
	tasks := []WorkerTask{
		{Name: "activity_logs_purged", Fn: w.purgeExpired},
	}
	StartPeriodicWorker(ctx, "activity_retention", w.RunInterval, tasks)
}

func (w *ActivityRetentionWorker) purgeExpired(ctx context.Context) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -w.RetentionDays)

	var totalPurged int64
	for {
		select {
		case <-ctx.Done():
			return totalPurged, nil
		default:
		}

		result := w.DB.Exec(
			`DELETE FROM admin_activity_logs
			 WHERE id IN (
			     SELECT id FROM admin_activity_logs
			     WHERE created_at < ?
			     LIMIT ?
			 )`,
			cutoff,
			configuration.ActivityPurgeBatchSize,
		)
		if result.Error != nil {
			return totalPurged, result.Error
		}

		totalPurged += result.RowsAffected
		if result.RowsAffected < configuration.ActivityPurgeBatchSize {
			return totalPurged, nil
		}
	}
}
