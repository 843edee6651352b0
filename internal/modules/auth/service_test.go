package auth

import (
	"context"
	"testing"
	"time"

	"estateoffice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 10
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) RecordFailedLogin(ctx context.Context, userID int64, attempts int, lockedUntil *time.Time) error {
	args := m.Called(ctx, userID, attempts, lockedUntil)
	return args.Error(0)
}

func (m *MockUserRepository) ResetLoginCounters(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type stubIssuer struct{}

func (stubIssuer) GenerateToken(userID int64, role string) (string, error) {
	return "token", nil
}

func hash(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLoginSuccess(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, stubIssuer{})

	repo.On("GetByEmail", mock.Anything, "admin@example.com").Return(&domain.User{
		ID:           1,
		Email:        "admin@example.com",
		PasswordHash: hash(t, "secret123"),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}, nil)

	res, err := svc.Login(context.Background(), LoginRequest{Email: " Admin@Example.com ", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "token", res.Token)
	assert.Empty(t, res.User.PasswordHash)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, stubIssuer{})

	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongPasswordCountsAttempt(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, stubIssuer{})

	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(&domain.User{
		ID:           1,
		PasswordHash: hash(t, "secret123"),
		IsActive:     true,
	}, nil)
	repo.On("RecordFailedLogin", mock.Anything, int64(1), 1, (*time.Time)(nil)).Return(nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	repo.AssertExpectations(t)
}

func TestLoginLocksAfterMaxAttempts(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, stubIssuer{})

	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(&domain.User{
		ID:                  1,
		PasswordHash:        hash(t, "secret123"),
		IsActive:            true,
		FailedLoginAttempts: 4,
	}, nil)
	repo.On("RecordFailedLogin", mock.Anything, int64(1), 5, mock.Anything).Return(nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestLoginRejectsLockedAccount(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, stubIssuer{})

	until := time.Now().Add(10 * time.Minute)
	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(&domain.User{
		ID:           1,
		PasswordHash: hash(t, "secret123"),
		IsActive:     true,
		LockedUntil:  &until,
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, stubIssuer{})

	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(&domain.User{
		ID:           1,
		PasswordHash: hash(t, "secret123"),
		IsActive:     false,
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestLoginResetsCountersAfterSuccess(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, stubIssuer{})

	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(&domain.User{
		ID:                  1,
		PasswordHash:        hash(t, "secret123"),
		IsActive:            true,
		FailedLoginAttempts: 3,
	}, nil)
	repo.On("ResetLoginCounters", mock.Anything, int64(1)).Return(nil)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "secret123"})
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateUserRejectsExistingEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, stubIssuer{})

	repo.On("GetByEmail", mock.Anything, "taken@example.com").Return(&domain.User{ID: 2}, nil)

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email: "Taken@Example.com", Password: "secret123", Name: "X", Role: "editor",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewService(repo, stubIssuer{})

	repo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	var storedHash string
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		storedHash = args.Get(1).(*domain.User).PasswordHash
	}).Return(nil)

	u, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email: "new@example.com", Password: "secret123", Name: "New", Role: "agent",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), u.ID)
	assert.Empty(t, u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("secret123")))
}
