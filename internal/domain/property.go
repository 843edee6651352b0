package domain

import "time"

type PropertyStatus string

const (
	PropertyDraft     PropertyStatus = "draft"
	PropertyPublished PropertyStatus = "published"
	PropertyArchived  PropertyStatus = "archived"
)

type Property struct {
	ID          int64          `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug" gorm:"uniqueIndex"`
	Description string         `json:"description" gorm:"type:text"`
	City        string         `json:"city" gorm:"index"`
	Address     string         `json:"address"`
	Price       float64        `json:"price"`
	Currency    string         `json:"currency" gorm:"default:'MAD'"`
	Surface     float64        `json:"surface"`
	Rooms       int            `json:"rooms"`
	Status      PropertyStatus `json:"status" gorm:"index;default:'draft'"`

	// JSON-encoded list of hosted image URLs.
	Photos string `json:"photos" gorm:"type:text"`

	CreatedBy int64     `json:"created_by" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Property) TableName() string { return "properties" }
