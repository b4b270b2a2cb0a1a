package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Artur-creator-1/blogapp/models"
)

// GormPostRepo implements PostRepo on top of gorm.
type GormPostRepo struct {
	db *gorm.DB
}

// NewGormPostRepo creates a post repository bound to the given database.
func NewGormPostRepo(db *gorm.DB) *GormPostRepo {
	return &GormPostRepo{db: db}
}

func (r *GormPostRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&post).Error
	if err != nil {
		return nil, translate(err, "get post by id")
	}
	return &post, nil
}

// GetAll returns non-deleted posts, newest first.
func (r *GormPostRepo) GetAll(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *GormPostRepo) GetByUserID(ctx context.Context, userID int64) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list posts by user: %w", err)
	}
	return posts, nil
}

func (r *GormPostRepo) Create(ctx context.Context, post *models.Post) (int64, error) {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}
	return post.ID, nil
}

func (r *GormPostRepo) Update(ctx context.Context, post *models.Post) error {
	res := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ? AND is_deleted = ?", post.ID, false).
		Updates(map[string]interface{}{
			"title":        post.Title,
			"content":      post.Content,
			"summary":      post.Summary,
			"image_url":    post.ImageURL,
			"is_published": post.IsPublished,
			"published_at": post.PublishedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("update post: %w", res.Error)
	}
	return nil
}

func (r *GormPostRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return false, fmt.Errorf("delete post: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
