package workers

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// WorkerTask represents a named operation executed during a worker cycle.
// Fn returns the number of rows it affected.
type WorkerTask struct {
	Name string
	Fn   func(ctx context.Context) (int64, error)
}

// StartPeriodicWorker runs an immediate cycle, then repeats on interval
// until the context is cancelled.
func StartPeriodicWorker(ctx context.Context, workerName string, interval time.Duration, tasks []WorkerTask) {
	zap.L().Info("Starting worker",
		zap.String("worker", workerName),
		zap.Duration("interval", interval))

	runWorkerCycle(ctx, workerName, tasks)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Worker shutting down", zap.String("worker", workerName))
			return
		case <-ticker.C:
			runWorkerCycle(ctx, workerName, tasks)
		}
	}
}

// runWorkerCycle executes one tracked cycle, logging timing and per-task
// affected-row counts. A failed task is logged and does not stop the
// remaining tasks.
func runWorkerCycle(ctx context.Context, workerName string, tasks []WorkerTask) {
	startTime := time.Now()
	zap.L().Info("Starting worker cycle", zap.String("worker", workerName))

	fields := []zap.Field{zap.String("worker", workerName)}
	for _, task := range tasks {
		count, taskErr := task.Fn(ctx)
		if taskErr != nil {
			zap.L().Error("Worker task failed",
				zap.String("worker", workerName),
				zap.String("task", task.Name),
				zap.Error(taskErr))
		}
		fields = append(fields, zap.Int64(task.Name, count))
	}
	fields = append(fields, zap.Duration("duration", time.Since(startTime)))

	zap.L().Info("Worker cycle complete", fields...)
}
