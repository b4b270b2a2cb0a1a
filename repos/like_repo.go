package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Artur-creator-1/blogapp/models"
)

// GormPostLikeRepo implements LikeRepo for post likes. The insert uses
// ON CONFLICT DO NOTHING against the composite primary key, so liking twice
// affects zero rows and reports false.
type GormPostLikeRepo struct {
	db *gorm.DB
}

// NewGormPostLikeRepo creates a post-like repository bound to the given database.
func NewGormPostLikeRepo(db *gorm.DB) *GormPostLikeRepo {
	return &GormPostLikeRepo{db: db}
}

func (r *GormPostLikeRepo) Like(ctx context.Context, postID, userID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.PostLike{PostID: postID, UserID: userID})
	if res.Error != nil {
		return false, fmt.Errorf("like post: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *GormPostLikeRepo) Unlike(ctx context.Context, postID, userID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.PostLike{})
	if res.Error != nil {
		return false, fmt.Errorf("unlike post: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *GormPostLikeRepo) IsLiked(ctx context.Context, postID, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check post like: %w", err)
	}
	return count > 0, nil
}

func (r *GormPostLikeRepo) Count(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count post likes: %w", err)
	}
	return count, nil
}

// GormCommentLikeRepo implements LikeRepo for comment likes.
type GormCommentLikeRepo struct {
	db *gorm.DB
}

// NewGormCommentLikeRepo creates a comment-like repository bound to the given database.
func NewGormCommentLikeRepo(db *gorm.DB) *GormCommentLikeRepo {
	return &GormCommentLikeRepo{db: db}
}

func (r *GormCommentLikeRepo) Like(ctx context.Context, commentID, userID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.CommentLike{CommentID: commentID, UserID: userID})
	if res.Error != nil {
		return false, fmt.Errorf("like comment: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *GormCommentLikeRepo) Unlike(ctx context.Context, commentID, userID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&models.CommentLike{})
	if res.Error != nil {
		return false, fmt.Errorf("unlike comment: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *GormCommentLikeRepo) IsLiked(ctx context.Context, commentID, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CommentLike{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check comment like: %w", err)
	}
	return count > 0, nil
}

func (r *GormCommentLikeRepo) Count(ctx context.Context, commentID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count comment likes: %w", err)
	}
	return count, nil
}

// NewGormRepos wires every repository to the same database handle.
func NewGormRepos(db *gorm.DB) Repos {
	return Repos{
		Users:        NewGormUserRepo(db),
		Posts:        NewGormPostRepo(db),
		Comments:     NewGormCommentRepo(db),
		Tags:         NewGormTagRepo(db),
		PostLikes:    NewGormPostLikeRepo(db),
		CommentLikes: NewGormCommentLikeRepo(db),
	}
}
