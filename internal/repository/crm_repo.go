package repository

import (
	"context"
	"time"

	"estateoffice/internal/domain"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	var c domain.Client
	if tx := r.db.WithContext(ctx).First(&c, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *ClientRepository) List(ctx context.Context, assignedTo int64, limit, offset int) ([]domain.Client, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Offset(offset)
	if assignedTo > 0 {
		q = q.Where("assigned_to = ?", assignedTo)
	}
	var clients []domain.Client
	tx := q.Find(&clients)
	return clients, tx.Error
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	var t domain.Task
	if tx := r.db.WithContext(ctx).First(&t, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &t, nil
}

func (r *TaskRepository) List(ctx context.Context, assignedTo int64, status domain.TaskStatus, limit, offset int) ([]domain.Task, error) {
	q := r.db.WithContext(ctx).Order("due_at").Limit(limit).Offset(offset)
	if assignedTo > 0 {
		q = q.Where("assigned_to = ?", assignedTo)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var tasks []domain.Task
	tx := q.Find(&tasks)
	return tasks, tx.Error
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// FindDueUnreminded returns open tasks due before the horizon that have not
// been reminded yet.
func (r *TaskRepository) FindDueUnreminded(ctx context.Context, horizon time.Time) ([]domain.Task, error) {
	var tasks []domain.Task
	tx := r.db.WithContext(ctx).
		Where("status = ? AND due_at <= ? AND reminder_sent_at IS NULL", domain.TaskOpen, horizon).
		Order("due_at").
		Find(&tasks)
	return tasks, tx.Error
}

func (r *TaskRepository) MarkReminderSent(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Where("id = ?", id).
		Update("reminder_sent_at", at).Error
}
