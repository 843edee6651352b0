package testimonial

import (
	"context"
	"errors"

	"estateoffice/internal/domain"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	repo     TestimonialRepository
	notifier NotificationSender
	logger   *zap.Logger
}

func NewService(repo TestimonialRepository, notifier NotificationSender, logger *zap.Logger) *Service {
	return &Service{repo: repo, notifier: notifier, logger: logger}
}

// Submit stores a visitor testimonial in the pending state. Testimonials
// only become publicly visible after an editor approves them.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.Testimonial, error) {
	t := &domain.Testimonial{
		AuthorName: req.AuthorName,
		Email:      req.Email,
		Rating:     req.Rating,
		Message:    req.Message,
		Status:     domain.TestimonialPending,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyTestimonialAdded(ctx, t); err != nil {
			s.logger.Warn("testimonial notification failed", zap.Error(err))
		}
	}
	s.logger.Info("testimonial submitted",
		zap.Int64("testimonial_id", t.ID),
		zap.Int("rating", t.Rating))
	return t, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Testimonial, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) List(ctx context.Context, status domain.TestimonialStatus, limit, offset int) ([]domain.Testimonial, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, status, limit, offset)
}

// Moderate moves a pending testimonial to approved or rejected. Already
// moderated entries cannot be moderated again.
func (s *Service) Moderate(ctx context.Context, id int64, status domain.TestimonialStatus) (*domain.Testimonial, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Status != domain.TestimonialPending {
		return nil, ErrInvalidTransition
	}
	if status != domain.TestimonialApproved && status != domain.TestimonialRejected {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	t.Status = status
	return t, nil
}
