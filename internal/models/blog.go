package models

import (
	"time"

	"gorm.io/gorm"
)

// BlogPost is an article written by an admin. Only published posts are
// visible on the public endpoints.
type BlogPost struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string     `json:"title" validate:"required,min=3,max=200"`
	Slug        string     `json:"slug" gorm:"uniqueIndex;type:varchar(200)"`
	Content     string     `json:"content" validate:"required"`
	AuthorID    string     `json:"author_id" gorm:"type:varchar(36);index"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	gorm.Model             // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
