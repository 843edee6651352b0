package contact

import (
	"context"
	"errors"
	"strings"
	"time"

	"estateoffice/internal/domain"
	"estateoffice/internal/pkg/countries"
	"estateoffice/internal/pkg/phone"

	"gorm.io/gorm"
)

type Service struct {
	leads  LeadRepository
	notifs NotificationSender
}

func NewService(leads LeadRepository, notifs NotificationSender) *Service {
	return &Service{leads: leads, notifs: notifs}
}

// Submit validates the form and persists the lead. The phone is emitted in
// E.164 when it parses; an unparseable value passes through unchanged so
// the normalizer itself never blocks a submission that validation accepted.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.ContactLead, map[string]string, error) {
	if errs := Validate(req); len(errs) > 0 {
		return nil, errs, ErrValidation
	}

	iso2 := strings.ToUpper(strings.TrimSpace(req.CountryISO2))
	if _, ok := countries.ByISO2(iso2); !ok {
		iso2 = countries.DefaultISO2
	}

	lead := &domain.ContactLead{
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          phone.ToE164(req.Phone, iso2),
		CountryISO2:    iso2,
		Message:        strings.TrimSpace(req.Message),
		ServiceType:    domain.ServiceType(req.ServiceType),
		ExpertCategory: req.ExpertCategory,
		ConsentGiven:   req.ConsentGiven,
		Status:         domain.LeadNew,
		PropertyID:     req.PropertyID,
	}

	if req.PreferredDate != "" {
		if d, err := time.Parse("2006-01-02", req.PreferredDate); err == nil {
			lead.PreferredDate = &d
		}
	}

	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyLeadCreated(ctx, lead)
	}

	return lead, nil, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.ContactLead, error) {
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return lead, nil
}

func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]LeadSummary, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	leads, err := s.leads.List(ctx, domain.LeadStatus(status), limit, offset)
	if err != nil {
		return nil, err
	}

	out := make([]LeadSummary, 0, len(leads))
	for _, l := range leads {
		out = append(out, LeadSummary{
			ID:             l.ID,
			Name:           l.Name,
			Email:          l.Email,
			Phone:          l.Phone,
			ServiceType:    string(l.ServiceType),
			ExpertCategory: l.ExpertCategory,
			Status:         string(l.Status),
			PreferredDate:  l.PreferredDate,
			CreatedAt:      l.CreatedAt,
		})
	}
	return out, nil
}

// UpdateStatus applies one step of the lead workflow, rejecting transitions
// the status graph does not allow.
func (s *Service) UpdateStatus(ctx context.Context, id int64, newStatus string) (*domain.ContactLead, error) {
	lead, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	to := domain.LeadStatus(newStatus)
	if !domain.CanTransitionLead(lead.Status, to) {
		return nil, ErrInvalidTransition
	}

	if err := s.leads.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}
	lead.Status = to
	return lead, nil
}
