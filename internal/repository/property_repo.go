package repository

import (
	"context"

	"estateoffice/internal/domain"

	"gorm.io/gorm"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	var p domain.Property
	if tx := r.db.WithContext(ctx).First(&p, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *PropertyRepository) GetBySlug(ctx context.Context, slug string) (*domain.Property, error) {
	var p domain.Property
	tx := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

type PropertyFilter struct {
	Status domain.PropertyStatus
	City   string
	Limit  int
	Offset int
}

func (r *PropertyRepository) List(ctx context.Context, f PropertyFilter) ([]domain.Property, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	q = q.Offset(f.Offset)

	var props []domain.Property
	tx := q.Find(&props)
	return props, tx.Error
}

func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Property{}, id).Error
}
