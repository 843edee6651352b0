package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"estateoffice/internal/domain"

	"go.uber.org/zap"
)

// Service persists notifications and pushes them over the websocket hub.
// Lead, offer and testimonial events fan out to every admin; task
// reminders go to the task's assignee only.
type Service struct {
	repo   NotificationRepository
	admins AdminLister
	hub    *Hub
	logger *zap.Logger
}

func NewService(repo NotificationRepository, admins AdminLister, hub *Hub, logger *zap.Logger) *Service {
	return &Service{repo: repo, admins: admins, hub: hub, logger: logger}
}

func (s *Service) NotifyLeadCreated(ctx context.Context, lead *domain.ContactLead) error {
	return s.fanOut(ctx, domain.NotifLeadCreated,
		"Nouveau contact",
		fmt.Sprintf("%s a envoyé une demande (%s)", lead.Name, lead.ServiceType),
		map[string]interface{}{"lead_id": lead.ID})
}

func (s *Service) NotifyOfferSubmitted(ctx context.Context, o *domain.InvestmentOffer) error {
	return s.fanOut(ctx, domain.NotifOfferSubmitted,
		"Nouvelle offre d'investissement",
		fmt.Sprintf("%s %s propose %.0f MAD", o.FirstName, o.LastName, o.AmountRequested),
		map[string]interface{}{"offer_id": o.ID})
}

func (s *Service) NotifyTestimonialAdded(ctx context.Context, t *domain.Testimonial) error {
	return s.fanOut(ctx, domain.NotifTestimonialAdded,
		"Nouveau témoignage",
		fmt.Sprintf("%s a laissé un avis (%d/5)", t.AuthorName, t.Rating),
		map[string]interface{}{"testimonial_id": t.ID})
}

func (s *Service) NotifyTaskDue(ctx context.Context, t *domain.Task) error {
	return s.deliver(ctx, t.AssignedTo, domain.NotifTaskDue,
		"Tâche à échéance",
		t.Title,
		map[string]interface{}{"task_id": t.ID, "due_at": t.DueAt})
}

func (s *Service) fanOut(ctx context.Context, typ, title, body string, data map[string]interface{}) error {
	admins, err := s.admins.ListAdmins(ctx)
	if err != nil {
		return err
	}
	for _, admin := range admins {
		if err := s.deliver(ctx, admin.ID, typ, title, body, data); err != nil {
			s.logger.Warn("notification delivery failed",
				zap.Int64("user_id", admin.ID),
				zap.String("type", typ),
				zap.Error(err))
		}
	}
	return nil
}

func (s *Service) deliver(ctx context.Context, userID int64, typ, title, body string, data map[string]interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	n := &domain.Notification{
		UserID: userID,
		Type:   typ,
		Title:  title,
		Body:   body,
		Data:   string(raw),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.SendToUser(userID, n)
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID int64, unreadOnly bool, limit, offset int) ([]domain.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByUser(ctx, userID, unreadOnly, limit, offset)
}

func (s *Service) MarkRead(ctx context.Context, userID, notificationID int64) error {
	return s.repo.MarkRead(ctx, userID, notificationID)
}
