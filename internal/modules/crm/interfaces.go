package crm

import (
	"context"
	"time"

	"estateoffice/internal/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context, assignedTo int64, limit, offset int) ([]domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
}

type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context, assignedTo int64, status domain.TaskStatus, limit, offset int) ([]domain.Task, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error
	FindDueUnreminded(ctx context.Context, horizon time.Time) ([]domain.Task, error)
	MarkReminderSent(ctx context.Context, id int64, at time.Time) error
}

type NotificationSender interface {
	NotifyTaskDue(ctx context.Context, t *domain.Task) error
}
