package models

import "time"

// Comment represents a reply to a post. ParentCommentID allows one level of
// threading; the reference is stored as supplied and not verified against
// existing comments.
type Comment struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	PostID          int64     `gorm:"index;not null" json:"post_id"`
	UserID          int64     `gorm:"index;not null" json:"user_id"`
	ParentCommentID *int64    `gorm:"index" json:"parent_comment_id,omitempty"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	LikesCount      int       `gorm:"default:0" json:"likes_count"`
	IsEdited        bool      `gorm:"default:false" json:"is_edited"`
	IsDeleted       bool      `gorm:"default:false;index" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
