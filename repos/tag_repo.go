package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Artur-creator-1/blogapp/models"
)

// GormTagRepo implements TagRepo on top of gorm.
type GormTagRepo struct {
	db *gorm.DB
}

// NewGormTagRepo creates a tag repository bound to the given database.
func NewGormTagRepo(db *gorm.DB) *GormTagRepo {
	return &GormTagRepo{db: db}
}

func (r *GormTagRepo) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, translate(err, "get tag by id")
	}
	return &tag, nil
}

// GetBySlug sees inactive tags as well, so uniqueness checks still collide
// with deactivated slugs.
func (r *GormTagRepo) GetBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&tag).Error; err != nil {
		return nil, translate(err, "get tag by slug")
	}
	return &tag, nil
}

// GetAll returns active tags in popularity order. Ties on posts_count come
// back in storage order.
func (r *GormTagRepo) GetAll(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("posts_count DESC").
		Find(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func (r *GormTagRepo) GetByPostID(ctx context.Context, postID int64) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.WithContext(ctx).
		Select("tags.*").
		Joins("INNER JOIN post_tags pt ON pt.tag_id = tags.id").
		Where("pt.post_id = ?", postID).
		Find(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("list tags by post: %w", err)
	}
	return tags, nil
}

func (r *GormTagRepo) Create(ctx context.Context, tag *models.Tag) (int64, error) {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return 0, fmt.Errorf("create tag: %w", err)
	}
	return tag.ID, nil
}

func (r *GormTagRepo) Update(ctx context.Context, tag *models.Tag) error {
	res := r.db.WithContext(ctx).Model(&models.Tag{}).Where("id = ?", tag.ID).
		Updates(map[string]interface{}{
			"name":        tag.Name,
			"slug":        tag.Slug,
			"description": tag.Description,
			"color":       tag.Color,
			"posts_count": tag.PostsCount,
			"is_active":   tag.IsActive,
		})
	if res.Error != nil {
		return fmt.Errorf("update tag: %w", res.Error)
	}
	return nil
}

func (r *GormTagRepo) Deactivate(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Tag{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return false, fmt.Errorf("deactivate tag: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// AttachToPost links a tag to a post; relinking an existing pair is a no-op.
func (r *GormTagRepo) AttachToPost(ctx context.Context, postID, tagID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.PostTag{PostID: postID, TagID: tagID})
	if res.Error != nil {
		return false, fmt.Errorf("attach tag to post: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *GormTagRepo) DetachFromPost(ctx context.Context, postID, tagID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("post_id = ? AND tag_id = ?", postID, tagID).
		Delete(&models.PostTag{})
	if res.Error != nil {
		return false, fmt.Errorf("detach tag from post: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
