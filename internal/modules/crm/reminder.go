package crm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Reminder periodically scans for open tasks due within the window and
// notifies their assignees once.
type Reminder struct {
	tasks    TaskRepository
	notifier NotificationSender
	logger   *zap.Logger
	interval time.Duration
	window   time.Duration
}

func NewReminder(tasks TaskRepository, notifier NotificationSender, logger *zap.Logger, interval, window time.Duration) *Reminder {
	return &Reminder{
		tasks:    tasks,
		notifier: notifier,
		logger:   logger,
		interval: interval,
		window:   window,
	}
}

// Run blocks until ctx is cancelled, firing one sweep per interval.
func (r *Reminder) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("task reminder started",
		zap.Duration("interval", r.interval),
		zap.Duration("window", r.window))

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("task reminder stopped")
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *Reminder) sweep(ctx context.Context) {
	now := time.Now()
	due, err := r.tasks.FindDueUnreminded(ctx, now.Add(r.window))
	if err != nil {
		r.logger.Error("failed to query due tasks", zap.Error(err))
		return
	}

	for i := range due {
		t := &due[i]
		if err := r.notifier.NotifyTaskDue(ctx, t); err != nil {
			r.logger.Warn("task reminder notification failed",
				zap.Int64("task_id", t.ID), zap.Error(err))
		}
		if err := r.tasks.MarkReminderSent(ctx, t.ID, now); err != nil {
			r.logger.Error("failed to mark reminder sent",
				zap.Int64("task_id", t.ID), zap.Error(err))
			continue
		}
		r.logger.Info("task reminder sent",
			zap.Int64("task_id", t.ID),
			zap.Int64("assigned_to", t.AssignedTo),
			zap.Time("due_at", t.DueAt))
	}
}
