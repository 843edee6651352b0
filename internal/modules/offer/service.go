package offer

import (
	"context"
	"errors"
	"strings"
	"time"

	"estateoffice/internal/domain"
	"estateoffice/internal/pkg/countries"
	"estateoffice/internal/pkg/phone"
	"estateoffice/internal/pkg/wizard"
	"estateoffice/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	machine  *wizard.Machine[Form]
	sessions SessionStore
	offers   OfferRepository
	detector Detector
	notifs   NotificationSender
	log      *zap.Logger
}

func NewService(
	sessions SessionStore,
	offers OfferRepository,
	detector Detector,
	notifs NotificationSender,
	log *zap.Logger,
) *Service {
	return &Service{
		machine:  wizard.New(validateFunding, validateIdentity, validateSettlement),
		sessions: sessions,
		offers:   offers,
		detector: detector,
		notifs:   notifs,
		log:      log,
	}
}

// Open starts a fresh wizard. Nothing survives from any earlier session;
// country detection runs once here and prefills the empty phone field.
func (s *Service) Open(ctx context.Context, clientIP string) (*OpenResponse, error) {
	iso2 := countries.DefaultISO2
	prefill := phone.Prefill(countries.Default())
	if s.detector != nil {
		iso2, prefill = s.detector.DetectCountry(ctx, clientIP)
	}

	sess := &Session{
		ID:             uuid.NewString(),
		State:          wizard.NewState(),
		IdempotencyKey: uuid.NewString(),
		CreatedAt:      time.Now(),
	}
	sess.Form.CountryISO2 = iso2
	sess.Form.Phone = prefill

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	return &OpenResponse{
		SessionID:    sess.ID,
		State:        sess.State,
		TotalSteps:   s.machine.Total(),
		CountryISO2:  iso2,
		PhonePrefill: prefill,
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*SessionView, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// Next merges the submitted fields and advances when the active step
// validates. The returned view carries the error map on failure.
func (s *Service) Next(ctx context.Context, id string, form Form) (*SessionView, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Submitted {
		return nil, ErrAlreadyDone
	}

	sess.Form = form
	s.machine.Next(&sess.State, sess.Form)

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// Prev never re-validates.
func (s *Service) Prev(ctx context.Context, id string) (*SessionView, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Submitted {
		return nil, ErrAlreadyDone
	}

	s.machine.Prev(&sess.State)

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// SwitchCountry re-derives the stored phone under the new country context,
// carrying the national digits over where the old value parses.
func (s *Service) SwitchCountry(ctx context.Context, id, toISO2 string) (*SessionView, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Submitted {
		return nil, ErrAlreadyDone
	}

	to, ok := countries.ByISO2(toISO2)
	if !ok {
		return nil, ErrValidation
	}

	sess.Form.Phone = phone.SwitchCountry(sess.Form.Phone, sess.Form.CountryISO2, to.ISO2)
	sess.Form.CountryISO2 = to.ISO2
	sess.State.ClearError("phone")

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// Submit is only reachable from the final data-entry step. The session's
// idempotency key makes a repeated submit return the original record
// instead of creating a duplicate.
func (s *Service) Submit(ctx context.Context, id string, form Form) (*SessionView, map[string]string, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if sess.Submitted {
		return s.view(sess), nil, nil
	}
	if !s.machine.Submittable(sess.State) {
		return nil, nil, ErrNotSubmittable
	}

	sess.Form = form
	if errs := s.machine.Validate(sess.State, sess.Form); len(errs) > 0 {
		sess.State.Errors = errs
		if err := s.sessions.Save(ctx, sess); err != nil {
			return nil, nil, err
		}
		return nil, errs, ErrValidation
	}

	iso2 := strings.ToUpper(strings.TrimSpace(sess.Form.CountryISO2))
	if _, ok := countries.ByISO2(iso2); !ok {
		iso2 = countries.DefaultISO2
	}

	record := &domain.InvestmentOffer{
		IdempotencyKey:  sess.IdempotencyKey,
		AmountRequested: sess.Form.AmountRequested,
		Participation:   domain.ParticipationType(sess.Form.Participation),
		FirstName:       strings.TrimSpace(sess.Form.FirstName),
		LastName:        strings.TrimSpace(sess.Form.LastName),
		Email:           strings.ToLower(strings.TrimSpace(sess.Form.Email)),
		Phone:           phone.ToE164(sess.Form.Phone, iso2),
		CountryISO2:     iso2,
		Nationality:     strings.TrimSpace(sess.Form.Nationality),
		Address:         strings.TrimSpace(sess.Form.Address),
		Comments:        strings.TrimSpace(sess.Form.Comments),
		PaymentMethod:   domain.PaymentMethod(sess.Form.PaymentMethod),
		Status:          domain.LeadNew,
	}

	err = s.offers.Create(ctx, record)
	if errors.Is(err, repository.ErrDuplicateKey) {
		// a racing double-submit already landed; reuse its row
		existing, getErr := s.offers.GetByIdempotencyKey(ctx, sess.IdempotencyKey)
		if getErr != nil {
			return nil, nil, getErr
		}
		record = existing
	} else if err != nil {
		return nil, nil, err
	}

	sess.Submitted = true
	sess.OfferID = record.ID
	s.machine.Complete(&sess.State)

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyOfferSubmitted(ctx, record)
	}
	s.log.Info("investment offer submitted",
		zap.Int64("offer_id", record.ID),
		zap.String("session_id", sess.ID))

	return s.view(sess), nil, nil
}

func (s *Service) ListOffers(ctx context.Context, status string, limit, offset int) ([]domain.InvestmentOffer, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.offers.List(ctx, domain.LeadStatus(status), limit, offset)
}

func (s *Service) UpdateOfferStatus(ctx context.Context, id int64, newStatus string) (*domain.InvestmentOffer, error) {
	o, err := s.offers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	to := domain.LeadStatus(newStatus)
	if !domain.CanTransitionLead(o.Status, to) {
		return nil, ErrValidation
	}
	if err := s.offers.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}
	o.Status = to
	return o, nil
}

func (s *Service) view(sess *Session) *SessionView {
	return &SessionView{
		SessionID:  sess.ID,
		State:      sess.State,
		TotalSteps: s.machine.Total(),
		Form:       sess.Form,
		Submitted:  sess.Submitted,
		OfferID:    sess.OfferID,
	}
}
