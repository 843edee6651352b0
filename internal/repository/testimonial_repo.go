package repository

import (
	"context"

	"estateoffice/internal/domain"

	"gorm.io/gorm"
)

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TestimonialRepository) GetByID(ctx context.Context, id int64) (*domain.Testimonial, error) {
	var t domain.Testimonial
	if tx := r.db.WithContext(ctx).First(&t, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &t, nil
}

func (r *TestimonialRepository) List(ctx context.Context, status domain.TestimonialStatus, limit, offset int) ([]domain.Testimonial, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var items []domain.Testimonial
	tx := q.Find(&items)
	return items, tx.Error
}

func (r *TestimonialRepository) UpdateStatus(ctx context.Context, id int64, status domain.TestimonialStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Testimonial{}).
		Where("id = ?", id).
		Update("status", status).Error
}
