package crm

import (
	"context"
	"errors"
	"time"

	"estateoffice/internal/domain"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dueAtLayout = "2006-01-02T15:04:05Z07:00"

type Service struct {
	clients ClientRepository
	tasks   TaskRepository
	logger  *zap.Logger
}

func NewService(clients ClientRepository, tasks TaskRepository, logger *zap.Logger) *Service {
	return &Service{clients: clients, tasks: tasks, logger: logger}
}

func (s *Service) CreateClient(ctx context.Context, req CreateClientRequest, creatorID int64) (*domain.Client, error) {
	assignedTo := req.AssignedTo
	if assignedTo == 0 {
		assignedTo = creatorID
	}
	c := &domain.Client{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CountryISO2: req.CountryISO2,
		Notes:       req.Notes,
		AssignedTo:  assignedTo,
		LeadID:      req.LeadID,
	}
	if err := s.clients.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ConvertLead creates a client record from a qualified lead, keeping the
// lead reference so the source is traceable.
func (s *Service) ConvertLead(ctx context.Context, lead *domain.ContactLead, assignedTo int64) (*domain.Client, error) {
	c := &domain.Client{
		Name:        lead.Name,
		Email:       lead.Email,
		Phone:       lead.Phone,
		CountryISO2: lead.CountryISO2,
		AssignedTo:  assignedTo,
		LeadID:      &lead.ID,
	}
	if err := s.clients.Create(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info("lead converted to client",
		zap.Int64("lead_id", lead.ID),
		zap.Int64("client_id", c.ID))
	return c, nil
}

func (s *Service) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	c, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) ListClients(ctx context.Context, assignedTo int64, limit, offset int) ([]domain.Client, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.clients.List(ctx, assignedTo, limit, offset)
}

func (s *Service) UpdateClient(ctx context.Context, id int64, req UpdateClientRequest) (*domain.Client, error) {
	c, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}
	if req.AssignedTo != nil {
		c.AssignedTo = *req.AssignedTo
	}

	if err := s.clients.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) CreateTask(ctx context.Context, req CreateTaskRequest, creatorID int64) (*domain.Task, error) {
	dueAt, err := time.Parse(dueAtLayout, req.DueAt)
	if err != nil {
		return nil, ErrInvalidDueDate
	}

	assignedTo := req.AssignedTo
	if assignedTo == 0 {
		assignedTo = creatorID
	}
	t := &domain.Task{
		Title:      req.Title,
		Details:    req.Details,
		ClientID:   req.ClientID,
		AssignedTo: assignedTo,
		DueAt:      dueAt,
		Status:     domain.TaskOpen,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *Service) ListTasks(ctx context.Context, assignedTo int64, status domain.TaskStatus, limit, offset int) ([]domain.Task, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.tasks.List(ctx, assignedTo, status, limit, offset)
}

func (s *Service) UpdateTaskStatus(ctx context.Context, id int64, status domain.TaskStatus) (*domain.Task, error) {
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	t.Status = status
	return t, nil
}
