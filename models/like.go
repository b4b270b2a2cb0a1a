package models

import "time"

// PostLike records one user liking one post. The composite primary key is the
// uniqueness constraint the idempotent insert relies on.
type PostLike struct {
	PostID    int64     `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	UserID    int64     `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentLike mirrors PostLike for comments.
type CommentLike struct {
	CommentID int64     `gorm:"primaryKey;autoIncrement:false" json:"comment_id"`
	UserID    int64     `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
