package blog

import (
	"context"

	"estateoffice/internal/domain"
)

type BlogRepository interface {
	Create(ctx context.Context, p *domain.BlogPost) error
	GetByID(ctx context.Context, id int64) (*domain.BlogPost, error)
	List(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.BlogPost, error)
	Update(ctx context.Context, p *domain.BlogPost) error
	Publish(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
