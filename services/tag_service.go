package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/Artur-creator-1/blogapp/models"
	"github.com/Artur-creator-1/blogapp/repos"
)

// CreateTagRequest carries the fields accepted when creating a tag. Slug is
// derived from the supplied value, lowercased and trimmed.
type CreateTagRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// UpdateTagRequest carries optional replacement fields; blank strings leave
// the current value untouched.
type UpdateTagRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// TagService owns tag business rules, including slug uniqueness against
// active and deactivated tags alike.
type TagService struct {
	tags  repos.TagRepo
	posts repos.PostRepo
	log   *zap.SugaredLogger
}

// NewTagService wires a TagService to its repositories.
func NewTagService(tags repos.TagRepo, posts repos.PostRepo, log *zap.SugaredLogger) *TagService {
	return &TagService{tags: tags, posts: posts, log: log}
}

func (s *TagService) GetByID(ctx context.Context, id int64) Response[*models.Tag] {
	if id <= 0 {
		return Fail[*models.Tag](KindValidation, "Invalid tag ID")
	}

	tag, err := s.tags.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[*models.Tag](KindNotFound, "Tag not found")
		}
		s.log.Errorw("get tag failed", "id", id, "err", err)
		return Fail[*models.Tag](KindUnexpected, "An error occurred")
	}
	if !tag.IsActive {
		return Fail[*models.Tag](KindNotFound, "Tag not found")
	}

	return OK(tag, "")
}

func (s *TagService) GetBySlug(ctx context.Context, slug string) Response[*models.Tag] {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return Fail[*models.Tag](KindValidation, "Slug is required")
	}

	tag, err := s.tags.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[*models.Tag](KindNotFound, "Tag not found")
		}
		s.log.Errorw("get tag by slug failed", "slug", slug, "err", err)
		return Fail[*models.Tag](KindUnexpected, "An error occurred")
	}
	if !tag.IsActive {
		return Fail[*models.Tag](KindNotFound, "Tag not found")
	}

	return OK(tag, "")
}

// GetAll lists active tags ordered by popularity, most-used first.
func (s *TagService) GetAll(ctx context.Context) Response[[]models.Tag] {
	tags, err := s.tags.GetAll(ctx)
	if err != nil {
		s.log.Errorw("list tags failed", "err", err)
		return Fail[[]models.Tag](KindUnexpected, "An error occurred")
	}
	if len(tags) == 0 {
		return OK([]models.Tag{}, "No tags found")
	}
	return OK(tags, "")
}

// GetByPostID lists the tags attached to a post. A missing post is a
// not-found failure, distinct from a post with no tags.
func (s *TagService) GetByPostID(ctx context.Context, postID int64) Response[[]models.Tag] {
	if postID <= 0 {
		return Fail[[]models.Tag](KindValidation, "Invalid post ID")
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[[]models.Tag](KindNotFound, "Post not found")
		}
		s.log.Errorw("get post for tags failed", "post_id", postID, "err", err)
		return Fail[[]models.Tag](KindUnexpected, "An error occurred")
	}

	tags, err := s.tags.GetByPostID(ctx, postID)
	if err != nil {
		s.log.Errorw("list post tags failed", "post_id", postID, "err", err)
		return Fail[[]models.Tag](KindUnexpected, "An error occurred")
	}
	if len(tags) == 0 {
		return OK([]models.Tag{}, "No tags found")
	}
	return OK(tags, "")
}

// Create validates the name, derives the slug, and rejects a slug already
// held by any tag, active or not.
func (s *TagService) Create(ctx context.Context, req CreateTagRequest) Response[*models.Tag] {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return Fail[*models.Tag](KindValidation, "Validation failed", "Tag name is required")
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if slug == "" {
		slug = strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	}

	if _, err := s.tags.GetBySlug(ctx, slug); err == nil {
		return Fail[*models.Tag](KindConflict, "Tag with this slug already exists")
	} else if !errors.Is(err, repos.ErrNotFound) {
		s.log.Errorw("slug uniqueness check failed", "slug", slug, "err", err)
		return Fail[*models.Tag](KindUnexpected, "An error occurred")
	}

	tag := &models.Tag{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(req.Description),
		Color:       strings.TrimSpace(req.Color),
		IsActive:    true,
	}

	id, err := s.tags.Create(ctx, tag)
	if err != nil {
		s.log.Errorw("create tag failed", "slug", slug, "err", err)
		return Fail[*models.Tag](KindUnexpected, "An error occurred")
	}
	tag.ID = id

	s.log.Infow("tag created", "id", id, "slug", slug)
	return OK(tag, "Tag created successfully")
}

// Update applies the non-blank fields of req. The slug is immutable.
func (s *TagService) Update(ctx context.Context, id int64, req UpdateTagRequest) Response[*models.Tag] {
	if id <= 0 {
		return Fail[*models.Tag](KindValidation, "Invalid tag ID")
	}

	tag, err := s.tags.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[*models.Tag](KindNotFound, "Tag not found")
		}
		s.log.Errorw("get tag for update failed", "id", id, "err", err)
		return Fail[*models.Tag](KindUnexpected, "An error occurred")
	}
	if !tag.IsActive {
		return Fail[*models.Tag](KindNotFound, "Tag not found")
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		tag.Name = name
	}
	if desc := strings.TrimSpace(req.Description); desc != "" {
		tag.Description = desc
	}
	if color := strings.TrimSpace(req.Color); color != "" {
		tag.Color = color
	}

	if err := s.tags.Update(ctx, tag); err != nil {
		s.log.Errorw("update tag failed", "id", id, "err", err)
		return Fail[*models.Tag](KindUnexpected, "An error occurred")
	}

	return OK(tag, "Tag updated successfully")
}

// Delete deactivates a tag. The row stays behind so its slug remains taken.
func (s *TagService) Delete(ctx context.Context, id int64) Response[string] {
	if id <= 0 {
		return Fail[string](KindValidation, "Invalid tag ID")
	}

	tag, err := s.tags.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[string](KindNotFound, "Tag not found")
		}
		s.log.Errorw("get tag for deletion failed", "id", id, "err", err)
		return Fail[string](KindUnexpected, "An error occurred")
	}
	if !tag.IsActive {
		return Fail[string](KindNotFound, "Tag not found")
	}

	if _, err := s.tags.Deactivate(ctx, id); err != nil {
		s.log.Errorw("deactivate tag failed", "id", id, "err", err)
		return Fail[string](KindUnexpected, "An error occurred")
	}

	s.log.Infow("tag deactivated", "id", id)
	return OK("Tag deleted successfully", "")
}

// AttachToPost links a tag to a post and bumps the tag's usage counter when
// a new link was actually inserted. Attaching twice is a no-op.
func (s *TagService) AttachToPost(ctx context.Context, postID, tagID int64) Response[string] {
	if postID <= 0 || tagID <= 0 {
		return Fail[string](KindValidation, "Invalid post ID or tag ID")
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[string](KindNotFound, "Post not found")
		}
		s.log.Errorw("get post for tag attach failed", "post_id", postID, "err", err)
		return Fail[string](KindUnexpected, "An error occurred")
	}

	tag, err := s.tags.GetByID(ctx, tagID)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[string](KindNotFound, "Tag not found")
		}
		s.log.Errorw("get tag for attach failed", "tag_id", tagID, "err", err)
		return Fail[string](KindUnexpected, "An error occurred")
	}
	if !tag.IsActive {
		return Fail[string](KindNotFound, "Tag not found")
	}

	attached, err := s.tags.AttachToPost(ctx, postID, tagID)
	if err != nil {
		s.log.Errorw("attach tag failed", "post_id", postID, "tag_id", tagID, "err", err)
		return Fail[string](KindUnexpected, "An error occurred")
	}
	if attached {
		tag.PostsCount++
		if err := s.tags.Update(ctx, tag); err != nil {
			s.log.Errorw("bump tag posts_count failed", "tag_id", tagID, "err", err)
		}
	}

	return OK("Tag attached successfully", "")
}

// DetachFromPost removes the link and decrements the usage counter when a
// link existed.
func (s *TagService) DetachFromPost(ctx context.Context, postID, tagID int64) Response[string] {
	if postID <= 0 || tagID <= 0 {
		return Fail[string](KindValidation, "Invalid post ID or tag ID")
	}

	detached, err := s.tags.DetachFromPost(ctx, postID, tagID)
	if err != nil {
		s.log.Errorw("detach tag failed", "post_id", postID, "tag_id", tagID, "err", err)
		return Fail[string](KindUnexpected, "An error occurred")
	}
	if detached {
		if tag, err := s.tags.GetByID(ctx, tagID); err == nil && tag.PostsCount > 0 {
			tag.PostsCount--
			if err := s.tags.Update(ctx, tag); err != nil {
				s.log.Errorw("drop tag posts_count failed", "tag_id", tagID, "err", err)
			}
		}
	}

	return OK("Tag detached successfully", "")
}
