package domain

import "time"

type BlogPost struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug" gorm:"uniqueIndex"`
	Excerpt     string     `json:"excerpt"`
	Body        string     `json:"body" gorm:"type:text"`
	CoverURL    string     `json:"cover_url"`
	Published   bool       `json:"published" gorm:"index;default:false"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	AuthorID    int64      `json:"author_id" gorm:"index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BlogPost) TableName() string { return "blog_posts" }
