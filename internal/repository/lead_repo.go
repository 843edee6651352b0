package repository

import (
	"context"

	"estateoffice/internal/domain"

	"gorm.io/gorm"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, l *domain.ContactLead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LeadRepository) GetByID(ctx context.Context, id int64) (*domain.ContactLead, error) {
	var l domain.ContactLead
	if tx := r.db.WithContext(ctx).First(&l, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &l, nil
}

func (r *LeadRepository) List(ctx context.Context, status domain.LeadStatus, limit, offset int) ([]domain.ContactLead, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var leads []domain.ContactLead
	tx := q.Find(&leads)
	return leads, tx.Error
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.ContactLead{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *LeadRepository) CountByStatus(ctx context.Context, status domain.LeadStatus) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).
		Model(&domain.ContactLead{}).
		Where("status = ?", status).
		Count(&count)
	return count, tx.Error
}
