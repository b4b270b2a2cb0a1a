package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Artur-creator-1/blogapp/models"
)

// GormCommentRepo implements CommentRepo on top of gorm.
type GormCommentRepo struct {
	db *gorm.DB
}

// NewGormCommentRepo creates a comment repository bound to the given database.
func NewGormCommentRepo(db *gorm.DB) *GormCommentRepo {
	return &GormCommentRepo{db: db}
}

func (r *GormCommentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&comment).Error
	if err != nil {
		return nil, translate(err, "get comment by id")
	}
	return &comment, nil
}

// GetByPostID returns the post's comments, newest first.
func (r *GormCommentRepo) GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND is_deleted = ?", postID, false).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments by post: %w", err)
	}
	return comments, nil
}

func (r *GormCommentRepo) GetByUserID(ctx context.Context, userID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments by user: %w", err)
	}
	return comments, nil
}

func (r *GormCommentRepo) Create(ctx context.Context, comment *models.Comment) (int64, error) {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return 0, fmt.Errorf("create comment: %w", err)
	}
	return comment.ID, nil
}

// Update persists new content and always raises the is_edited flag.
func (r *GormCommentRepo) Update(ctx context.Context, comment *models.Comment) error {
	res := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ? AND is_deleted = ?", comment.ID, false).
		Updates(map[string]interface{}{
			"content":   comment.Content,
			"is_edited": true,
		})
	if res.Error != nil {
		return fmt.Errorf("update comment: %w", res.Error)
	}
	return nil
}

func (r *GormCommentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return false, fmt.Errorf("delete comment: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
