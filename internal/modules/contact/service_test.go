package contact

import (
	"context"
	"testing"

	"estateoffice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, l *domain.ContactLead) error {
	args := m.Called(ctx, l)
	if l != nil {
		l.ID = 101
	}
	return args.Error(0)
}

func (m *MockLeadRepository) GetByID(ctx context.Context, id int64) (*domain.ContactLead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactLead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, status domain.LeadStatus, limit, offset int) ([]domain.ContactLead, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactLead), args.Error(1)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyLeadCreated(ctx context.Context, lead *domain.ContactLead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func TestSubmitPersistsNormalizedLead(t *testing.T) {
	repo := new(MockLeadRepository)
	notifs := new(MockNotifier)
	svc := NewService(repo, notifs)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifs.On("NotifyLeadCreated", mock.Anything, mock.Anything).Return(nil)

	req := validSubmit()
	req.Email = "  Yassine@Example.COM "

	lead, fieldErrs, err := svc.Submit(context.Background(), req)
	assert.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, int64(101), lead.ID)
	assert.Equal(t, "yassine@example.com", lead.Email)
	assert.Equal(t, "+212612345678", lead.Phone)
	assert.Equal(t, "MA", lead.CountryISO2)
	assert.Equal(t, domain.LeadNew, lead.Status)

	repo.AssertExpectations(t)
	notifs.AssertExpectations(t)
}

func TestSubmitRejectsInvalidFormWithoutPersisting(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewService(repo, nil)

	req := validSubmit()
	req.Email = "invalide"

	lead, fieldErrs, err := svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, lead)
	assert.Equal(t, "Email invalide", fieldErrs["email"])

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitNotificationFailureDoesNotFailSubmission(t *testing.T) {
	repo := new(MockLeadRepository)
	notifs := new(MockNotifier)
	svc := NewService(repo, notifs)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifs.On("NotifyLeadCreated", mock.Anything, mock.Anything).Return(assert.AnError)

	lead, _, err := svc.Submit(context.Background(), validSubmit())
	assert.NoError(t, err)
	assert.NotNil(t, lead)
}

func TestSubmitParsesPreferredDate(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewService(repo, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := validSubmit()
	req.ServiceType = "estimation"
	req.PreferredDate = "2026-09-15"

	lead, _, err := svc.Submit(context.Background(), req)
	assert.NoError(t, err)
	if assert.NotNil(t, lead.PreferredDate) {
		assert.Equal(t, "2026-09-15", lead.PreferredDate.Format("2006-01-02"))
	}
}

func TestGetMapsMissingRecord(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewService(repo, nil)

	repo.On("GetByID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusFollowsTransitionGraph(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewService(repo, nil)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.ContactLead{ID: 1, Status: domain.LeadNew}, nil)
	repo.On("UpdateStatus", mock.Anything, int64(1), domain.LeadContacted).Return(nil)

	lead, err := svc.UpdateStatus(context.Background(), 1, "contacted")
	assert.NoError(t, err)
	assert.Equal(t, domain.LeadContacted, lead.Status)
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewService(repo, nil)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.ContactLead{ID: 1, Status: domain.LeadNew}, nil)

	_, err := svc.UpdateStatus(context.Background(), 1, "converted")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatusTerminalStates(t *testing.T) {
	repo := new(MockLeadRepository)
	svc := NewService(repo, nil)

	repo.On("GetByID", mock.Anything, int64(2)).Return(&domain.ContactLead{ID: 2, Status: domain.LeadConverted}, nil)

	_, err := svc.UpdateStatus(context.Background(), 2, "contacted")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
