package blog

import (
	"context"
	"testing"

	"estateoffice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(ctx context.Context, p *domain.BlogPost) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 21
	}
	return args.Error(0)
}

func (m *MockBlogRepository) GetByID(ctx context.Context, id int64) (*domain.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.BlogPost, error) {
	args := m.Called(ctx, publishedOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) Update(ctx context.Context, p *domain.BlogPost) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockBlogRepository) Publish(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBlogRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateDerivesSlugFromTitle(t *testing.T) {
	repo := new(MockBlogRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	post, err := svc.Create(context.Background(), CreateRequest{
		Title: "  Investir à Casablanca en 2026 ",
		Body:  "...",
	}, 3)
	require.NoError(t, err)
	assert.Equal(t, "investir-casablanca-en-2026", post.Slug)
	assert.Equal(t, "Investir à Casablanca en 2026", post.Title)
	assert.Equal(t, int64(3), post.AuthorID)
}

func TestCreateKeepsExplicitSlug(t *testing.T) {
	repo := new(MockBlogRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	post, err := svc.Create(context.Background(), CreateRequest{
		Title: "Investir à Casablanca",
		Slug:  "guide-casablanca",
		Body:  "...",
	}, 3)
	require.NoError(t, err)
	assert.Equal(t, "guide-casablanca", post.Slug)
}

func TestCreateRejectsUnsluggableTitle(t *testing.T) {
	repo := new(MockBlogRepository)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{Title: "???", Body: "..."}, 3)
	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPublishRefetchesPost(t *testing.T) {
	repo := new(MockBlogRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(21)).
		Return(&domain.BlogPost{ID: 21, Published: false}, nil).Once()
	repo.On("Publish", mock.Anything, int64(21)).Return(nil)
	repo.On("GetByID", mock.Anything, int64(21)).
		Return(&domain.BlogPost{ID: 21, Published: true}, nil).Once()

	post, err := svc.Publish(context.Background(), 21)
	require.NoError(t, err)
	assert.True(t, post.Published)
}

func TestPublishMissingPost(t *testing.T) {
	repo := new(MockBlogRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Publish(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	repo := new(MockBlogRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(21)).Return(&domain.BlogPost{
		ID: 21, Title: "Avant", Body: "corps", Excerpt: "résumé",
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	title := "Après"
	post, err := svc.Update(context.Background(), 21, UpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Après", post.Title)
	assert.Equal(t, "corps", post.Body)
	assert.Equal(t, "résumé", post.Excerpt)
}

func TestDeleteMissingPost(t *testing.T) {
	repo := new(MockBlogRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}
