package repos

import (
	"context"
	"errors"

	"github.com/Artur-creator-1/blogapp/models"
)

// ErrNotFound is returned by lookups when no row matches. Implementations
// translate their driver's sentinel into this one so callers stay
// storage-agnostic.
var ErrNotFound = errors.New("record not found")

// UserRepo defines persistence operations for users. Lookups return rows
// regardless of is_active; filtering inactive users is a service concern so
// that uniqueness checks still see deactivated accounts.
type UserRepo interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) (int64, error)
	Update(ctx context.Context, user *models.User) error
	Deactivate(ctx context.Context, id int64) (bool, error)
}

// PostRepo defines persistence operations for posts. All reads exclude
// soft-deleted rows.
type PostRepo interface {
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Post, error)
	Create(ctx context.Context, post *models.Post) (int64, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CommentRepo defines persistence operations for comments.
type CommentRepo interface {
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) (int64, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// TagRepo defines persistence operations for tags and the post_tags join.
// Slug lookups see inactive tags so slug uniqueness survives deactivation.
type TagRepo interface {
	GetByID(ctx context.Context, id int64) (*models.Tag, error)
	GetBySlug(ctx context.Context, slug string) (*models.Tag, error)
	GetAll(ctx context.Context) ([]models.Tag, error)
	GetByPostID(ctx context.Context, postID int64) ([]models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) (int64, error)
	Update(ctx context.Context, tag *models.Tag) error
	Deactivate(ctx context.Context, id int64) (bool, error)
	AttachToPost(ctx context.Context, postID, tagID int64) (bool, error)
	DetachFromPost(ctx context.Context, postID, tagID int64) (bool, error)
}

// LikeRepo is the capability set shared by post and comment likes. Like
// reports false when the pair already existed (insert affected zero rows).
type LikeRepo interface {
	Like(ctx context.Context, targetID, userID int64) (bool, error)
	Unlike(ctx context.Context, targetID, userID int64) (bool, error)
	IsLiked(ctx context.Context, targetID, userID int64) (bool, error)
	Count(ctx context.Context, targetID int64) (int64, error)
}

// Repos groups the repository interfaces for constructor wiring.
type Repos struct {
	Users        UserRepo
	Posts        PostRepo
	Comments     CommentRepo
	Tags         TagRepo
	PostLikes    LikeRepo
	CommentLikes LikeRepo
}
