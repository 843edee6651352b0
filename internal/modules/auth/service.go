package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"estateoffice/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	maxFailedLoginAttempts = 5
	lockoutDuration        = 15 * time.Minute
)

type Service struct {
	users UserRepository
	jwt   tokenIssuer
}

func NewService(users UserRepository, jwt tokenIssuer) *Service {
	return &Service{users: users, jwt: jwt}
}

type LoginResult struct {
	User  *domain.User
	Token string
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	now := time.Now()
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}
	if user.LockedUntil != nil && user.LockedUntil.After(now) {
		return nil, ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		attempts := user.FailedLoginAttempts + 1
		var lockedUntil *time.Time
		if attempts >= maxFailedLoginAttempts {
			t := now.Add(lockoutDuration)
			lockedUntil = &t
		}
		if recErr := s.users.RecordFailedLogin(ctx, user.ID, attempts, lockedUntil); recErr != nil {
			return nil, recErr
		}
		if lockedUntil != nil {
			return nil, ErrAccountLocked
		}
		return nil, ErrInvalidCredentials
	}

	if user.FailedLoginAttempts > 0 || user.LockedUntil != nil {
		if err := s.users.ResetLoginCounters(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, Token: token}, nil
}

// CreateUser provisions a back-office account. Only reachable behind the
// users.manage capability.
func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         domain.UserRole(req.Role),
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]UserPublic, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]UserPublic, 0, len(users))
	for _, u := range users {
		out = append(out, UserPublic{
			ID:    u.ID,
			Role:  string(u.Role),
			Name:  u.Name,
			Email: u.Email,
			Phone: u.Phone,
		})
	}
	return out, nil
}
