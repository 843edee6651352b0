package repository

import (
	"context"
	"strings"
	"time"

	"estateoffice/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if tx := r.db.WithContext(ctx).First(&u, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	var users []domain.User
	tx := r.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&users)
	return users, tx.Error
}

// RecordFailedLogin bumps the counter and locks the account when it crosses
// the threshold.
func (r *UserRepository) RecordFailedLogin(ctx context.Context, userID int64, attempts int, lockedUntil *time.Time) error {
	updates := map[string]any{"failed_login_attempts": attempts}
	if lockedUntil != nil {
		updates["locked_until"] = *lockedUntil
	}
	return r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(updates).Error
}

func (r *UserRepository) ResetLoginCounters(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"failed_login_attempts": 0,
			"locked_until":          nil,
		}).Error
}

func (r *UserRepository) ListAdmins(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	tx := r.db.WithContext(ctx).
		Where("role = ? AND is_active = ?", domain.RoleAdmin, true).
		Find(&users)
	return users, tx.Error
}
