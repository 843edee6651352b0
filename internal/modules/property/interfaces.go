package property

import (
	"context"

	"estateoffice/internal/domain"
	"estateoffice/internal/repository"
)

type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Property, error)
	List(ctx context.Context, f repository.PropertyFilter) ([]domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id int64) error
}
