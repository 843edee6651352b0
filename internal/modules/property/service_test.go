package property

import (
	"context"
	"testing"

	"estateoffice/internal/domain"
	"estateoffice/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 11
	}
	return args.Error(0)
}

func (m *MockPropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) GetBySlug(ctx context.Context, slug string) (*domain.Property, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) List(ctx context.Context, f repository.PropertyFilter) ([]domain.Property, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "villa-piscine-marrakech", slugify("Villa piscine Marrakech"))
	assert.Equal(t, "appartement-120m2", slugify("  Appartement   120m2! "))
	assert.Equal(t, "", slugify("???"))
}

func TestCreateDerivesSlugAndStartsDraft(t *testing.T) {
	repo := new(MockPropertyRepository)
	svc := NewService(repo)

	repo.On("GetBySlug", mock.Anything, "villa-marrakech").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Create(context.Background(), CreateRequest{
		Title: "Villa Marrakech",
		City:  "Marrakech",
		Price: 5000000,
	}, 3)
	require.NoError(t, err)
	assert.Equal(t, "villa-marrakech", p.Slug)
	assert.Equal(t, domain.PropertyDraft, p.Status)
	assert.Equal(t, "MAD", p.Currency)
	assert.Equal(t, int64(3), p.CreatedBy)
}

func TestCreateRejectsTakenSlug(t *testing.T) {
	repo := new(MockPropertyRepository)
	svc := NewService(repo)

	repo.On("GetBySlug", mock.Anything, "villa-marrakech").
		Return(&domain.Property{ID: 1}, nil)

	_, err := svc.Create(context.Background(), CreateRequest{
		Title: "Villa Marrakech", City: "Marrakech", Price: 1,
	}, 3)
	assert.ErrorIs(t, err, ErrSlugTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	repo := new(MockPropertyRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Property{
		ID: 1, Title: "Avant", City: "Rabat", Price: 100, Status: domain.PropertyDraft,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	title := "Après"
	status := "published"
	p, err := svc.Update(context.Background(), 1, UpdateRequest{Title: &title, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "Après", p.Title)
	assert.Equal(t, domain.PropertyPublished, p.Status)
	assert.Equal(t, "Rabat", p.City)
	assert.Equal(t, float64(100), p.Price)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	repo := new(MockPropertyRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Property{ID: 1}, nil)

	status := "vendu"
	_, err := svc.Update(context.Background(), 1, UpdateRequest{Status: &status})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateRejectsNonPositivePrice(t *testing.T) {
	repo := new(MockPropertyRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Property{ID: 1}, nil)

	price := 0.0
	_, err := svc.Update(context.Background(), 1, UpdateRequest{Price: &price})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteMissingProperty(t *testing.T) {
	repo := new(MockPropertyRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}
