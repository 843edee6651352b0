package testimonial

import (
	"context"

	"estateoffice/internal/domain"
)

type TestimonialRepository interface {
	Create(ctx context.Context, t *domain.Testimonial) error
	GetByID(ctx context.Context, id int64) (*domain.Testimonial, error)
	List(ctx context.Context, status domain.TestimonialStatus, limit, offset int) ([]domain.Testimonial, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TestimonialStatus) error
}

type NotificationSender interface {
	NotifyTestimonialAdded(ctx context.Context, t *domain.Testimonial) error
}
