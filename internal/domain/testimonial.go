package domain

import "time"

type TestimonialStatus string

const (
	TestimonialPending  TestimonialStatus = "pending"
	TestimonialApproved TestimonialStatus = "approved"
	TestimonialRejected TestimonialStatus = "rejected"
)

type Testimonial struct {
	ID         int64             `json:"id" gorm:"primaryKey"`
	AuthorName string            `json:"author_name"`
	Email      string            `json:"email"`
	Rating     int               `json:"rating"`
	Message    string            `json:"message" gorm:"type:text"`
	Status     TestimonialStatus `json:"status" gorm:"index;default:'pending'"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Testimonial) TableName() string { return "testimonials" }
