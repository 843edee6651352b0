package domain

import "time"

// Client is a CRM contact, usually created by converting a lead.
type Client struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Name        string `json:"name"`
	Email       string `json:"email" gorm:"index"`
	Phone       string `json:"phone"`
	CountryISO2 string `json:"country_iso2"`
	Notes       string `json:"notes" gorm:"type:text"`
	AssignedTo  int64  `json:"assigned_to" gorm:"index"`

	LeadID *int64 `json:"lead_id,omitempty" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Client) TableName() string { return "clients" }

type TaskStatus string

const (
	TaskOpen TaskStatus = "open"
	TaskDone TaskStatus = "done"
)

// Task is a CRM follow-up with a due date. ReminderSentAt keeps the
// reminder runner from notifying twice for the same task.
type Task struct {
	ID         int64      `json:"id" gorm:"primaryKey"`
	Title      string     `json:"title"`
	Details    string     `json:"details" gorm:"type:text"`
	ClientID   *int64     `json:"client_id,omitempty" gorm:"index"`
	AssignedTo int64      `json:"assigned_to" gorm:"index"`
	DueAt      time.Time  `json:"due_at" gorm:"index"`
	Status     TaskStatus `json:"status" gorm:"index;default:'open'"`

	ReminderSentAt *time.Time `json:"reminder_sent_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Task) TableName() string { return "tasks" }
