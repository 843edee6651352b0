package domain

import (
	"database/sql"
	"time"
)

// Notification type constants
const (
	NotifLeadCreated      = "lead.created"
	NotifOfferSubmitted   = "offer.submitted"
	NotifTaskDue          = "task.due"
	NotifTestimonialAdded = "testimonial.added"
)

type Notification struct {
	ID        int64        `json:"id" gorm:"primaryKey"`
	UserID    int64        `json:"user_id" gorm:"index"`
	Type      string       `json:"type" gorm:"index"`
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	Data      string       `json:"data" gorm:"type:text"`
	ReadAt    sql.NullTime `json:"read_at"`
	CreatedAt time.Time    `json:"created_at" gorm:"autoCreateTime"`
}

func (Notification) TableName() string { return "notifications" }

func (n *Notification) MarkAsRead() {
	n.ReadAt = sql.NullTime{Time: time.Now(), Valid: true}
}

func (n *Notification) IsRead() bool {
	return n.ReadAt.Valid
}
