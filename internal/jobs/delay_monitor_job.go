package jobs

import (
	"context"

	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DelayMonitorJob periodically grades every active order's delay and logs
// the overdue ones so operators can step in. It never mutates orders;
// the grading itself happens in the active-orders query.
type DelayMonitorJob struct {
	handler queries.GetActiveOrdersQueryHandler
	cron    *cron.Cron
	logger  *zap.Logger
}

// NewDelayMonitorJob creates a job that scans active orders every 30 seconds.
func NewDelayMonitorJob(handler queries.GetActiveOrdersQueryHandler, logger *zap.Logger) *DelayMonitorJob {
	return &DelayMonitorJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With(zap.String("component", "delay_monitor_job")),
	}
}

// Start begins the delay monitor on its 30-second schedule.
func (j *DelayMonitorJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Delay monitor job started (running every 30 seconds)")
	return nil
}

// Stop stops the delay monitor job.
func (j *DelayMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.Info("Delay monitor job stopped")
}

func (j *DelayMonitorJob) run() {
	ctx := context.Background()

	rows, err := j.handler.Handle(ctx, queries.NewGetActiveOrdersQuery())
	if err != nil {
		j.logger.Error("Delay monitor scan failed", zap.Error(err))
		return
	}

	for _, row := range rows {
		if row.Delay == order.DelayNone {
			continue
		}

		fields := []zap.Field{
			zap.String("order_id", row.ID.String()),
			zap.String("status", row.Status.String()),
			zap.Time("placed_at", row.PlacedAt),
			zap.String("severity", row.Delay.String()),
		}

		if row.Delay == order.DelayCritical {
			j.logger.Error("Order is critically delayed", fields...)
		} else {
			j.logger.Warn("Order is delayed", fields...)
		}
	}
}
