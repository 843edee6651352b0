package domain

import "time"

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleEditor UserRole = "editor"
	RoleAgent  UserRole = "agent"
)

type User struct {
	ID           int64    `json:"id" gorm:"primaryKey"`
	Email        string   `json:"email" gorm:"uniqueIndex"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone,omitempty"`
	IsActive     bool     `json:"is_active" gorm:"default:true"`

	FailedLoginAttempts int        `json:"-"`
	LockedUntil         *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
