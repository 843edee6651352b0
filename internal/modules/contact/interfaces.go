package contact

import (
	"context"

	"estateoffice/internal/domain"
)

type LeadRepository interface {
	Create(ctx context.Context, l *domain.ContactLead) error
	GetByID(ctx context.Context, id int64) (*domain.ContactLead, error)
	List(ctx context.Context, status domain.LeadStatus, limit, offset int) ([]domain.ContactLead, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error
}

// NotificationSender fans a new-lead event out to back-office users.
// A nil sender disables fan-out; send failures never fail the submission.
type NotificationSender interface {
	NotifyLeadCreated(ctx context.Context, lead *domain.ContactLead) error
}
