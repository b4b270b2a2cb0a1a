package models

import "time"

// Tag is a label attached to posts. Slug is the lower-cased URL-friendly key
// and must stay unique; deactivated tags keep their slug reserved.
type Tag struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:64;not null" json:"name"`
	Slug        string    `gorm:"size:64;not null;uniqueIndex" json:"slug"`
	Description string    `gorm:"size:255" json:"description"`
	Color       string    `gorm:"size:7" json:"color"` // hex, e.g. #FF5733
	PostsCount  int       `gorm:"default:0" json:"posts_count"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PostTag links posts to tags.
type PostTag struct {
	PostID    int64     `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	TagID     int64     `gorm:"primaryKey;autoIncrement:false" json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
}
