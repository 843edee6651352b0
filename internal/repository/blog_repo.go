package repository

import (
	"context"
	"time"

	"estateoffice/internal/domain"

	"gorm.io/gorm"
)

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) Create(ctx context.Context, p *domain.BlogPost) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*domain.BlogPost, error) {
	var p domain.BlogPost
	if tx := r.db.WithContext(ctx).First(&p, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *BlogRepository) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.BlogPost, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Offset(offset)
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	var posts []domain.BlogPost
	tx := q.Find(&posts)
	return posts, tx.Error
}

func (r *BlogRepository) Update(ctx context.Context, p *domain.BlogPost) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *BlogRepository) Publish(ctx context.Context, id int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&domain.BlogPost{}).
		Where("id = ?", id).
		Updates(map[string]any{"published": true, "published_at": now}).Error
}

func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.BlogPost{}, id).Error
}
