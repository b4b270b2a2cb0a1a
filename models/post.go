package models

import "time"

// Post represents a blog post created by a user. Deletion is a soft flag so
// the row stays reachable for moderation queries.
type Post struct {
	ID            int64      `gorm:"primaryKey" json:"id"`
	UserID        int64      `gorm:"index;not null" json:"user_id"`
	Title         string     `gorm:"size:200;not null" json:"title"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	Summary       string     `gorm:"size:500" json:"summary"`
	ImageURL      string     `gorm:"size:512" json:"image_url"`
	ViewCount     int        `gorm:"default:0" json:"view_count"`
	LikesCount    int        `gorm:"default:0" json:"likes_count"`
	CommentsCount int        `gorm:"default:0" json:"comments_count"`
	IsPublished   bool       `gorm:"default:true" json:"is_published"`
	PublishedAt   *time.Time `json:"published_at"`
	IsDeleted     bool       `gorm:"default:false;index" json:"-"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
