package offer

import (
	"context"

	"estateoffice/internal/domain"
)

type OfferRepository interface {
	Create(ctx context.Context, o *domain.InvestmentOffer) error
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.InvestmentOffer, error)
	List(ctx context.Context, status domain.LeadStatus, limit, offset int) ([]domain.InvestmentOffer, error)
	GetByID(ctx context.Context, id int64) (*domain.InvestmentOffer, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error
}

// Detector resolves the initial country for a fresh wizard session.
type Detector interface {
	DetectCountry(ctx context.Context, ip string) (iso2, phonePrefill string)
}

type NotificationSender interface {
	NotifyOfferSubmitted(ctx context.Context, o *domain.InvestmentOffer) error
}
