package auth

import (
	"context"
	"time"

	"estateoffice/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	RecordFailedLogin(ctx context.Context, userID int64, attempts int, lockedUntil *time.Time) error
	ResetLoginCounters(ctx context.Context, userID int64) error
}

type tokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}
