package app

import (
	"context"
	"time"

	"github.com/sendikahub/core/internal/modules/content/event"
	"github.com/sendikahub/core/internal/pkg/cron"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (a *App) registerCronJobs(sched *cron.Scheduler, db *mongo.Database) {
	events := event.NewService(db)

	sched.Register(cron.Job{
		Name:        "archive_past_events",
		Description: "Geçmiş etkinlikleri arşivler",
		Interval:    time.Hour,
		Fn: func(ctx context.Context) error {
			n, err := events.ArchivePast(ctx, time.Now())
			if err != nil {
				return err
			}
			if n > 0 {
				a.logger.Info("archived past events", zap.Int64("count", n))
			}
			return nil
		},
	})
}
