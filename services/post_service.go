package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Artur-creator-1/blogapp/models"
	"github.com/Artur-creator-1/blogapp/repos"
)

// CreatePostRequest carries the fields accepted when creating a post.
type CreatePostRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Summary     string `json:"summary"`
	ImageURL    string `json:"image_url"`
	IsPublished bool   `json:"is_published"`
}

// UpdatePostRequest carries the fields accepted when updating a post.
// Blank strings are no-ops; IsPublished is applied as sent.
type UpdatePostRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Summary     string `json:"summary"`
	ImageURL    string `json:"image_url"`
	IsPublished bool   `json:"is_published"`
}

// PostService owns post business rules, including the publish timestamp
// invariant: published_at is set on the first transition to published and
// never cleared afterwards.
type PostService struct {
	posts repos.PostRepo
	log   *zap.SugaredLogger
}

// NewPostService wires a PostService to its repository.
func NewPostService(posts repos.PostRepo, log *zap.SugaredLogger) *PostService {
	return &PostService{posts: posts, log: log}
}

func (s *PostService) GetByID(ctx context.Context, id int64) Response[*models.Post] {
	if id <= 0 {
		return Fail[*models.Post](KindValidation, "Invalid post ID")
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[*models.Post](KindNotFound, "Post not found")
		}
		s.log.Errorw("get post failed", "id", id, "err", err)
		return Fail[*models.Post](KindUnexpected, "An error occurred")
	}

	return OK(post, "")
}

// GetAll lists non-deleted posts, newest first.
func (s *PostService) GetAll(ctx context.Context) Response[[]models.Post] {
	posts, err := s.posts.GetAll(ctx)
	if err != nil {
		s.log.Errorw("list posts failed", "err", err)
		return Fail[[]models.Post](KindUnexpected, "An error occurred")
	}
	if len(posts) == 0 {
		return OK([]models.Post{}, "No posts found")
	}
	return OK(posts, "")
}

// GetByUserID lists a user's non-deleted posts, newest first.
func (s *PostService) GetByUserID(ctx context.Context, userID int64) Response[[]models.Post] {
	if userID <= 0 {
		return Fail[[]models.Post](KindValidation, "Invalid user ID")
	}
	posts, err := s.posts.GetByUserID(ctx, userID)
	if err != nil {
		s.log.Errorw("list user posts failed", "user_id", userID, "err", err)
		return Fail[[]models.Post](KindUnexpected, "An error occurred")
	}
	if len(posts) == 0 {
		return OK([]models.Post{}, "No posts found")
	}
	return OK(posts, "")
}

// Create validates and persists a new post. published_at is stamped only
// when the post is created already published.
func (s *PostService) Create(ctx context.Context, userID int64, req CreatePostRequest) Response[*models.Post] {
	if userID <= 0 {
		return Fail[*models.Post](KindValidation, "Invalid user ID")
	}
	if errs := validatePost(req.Title, req.Content, req.Summary); len(errs) > 0 {
		s.log.Infow("post rejected", "user_id", userID, "errors", errs)
		return Fail[*models.Post](KindValidation, "Validation failed", errs...)
	}

	post := &models.Post{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Content:     strings.TrimSpace(req.Content),
		Summary:     strings.TrimSpace(req.Summary),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		IsPublished: req.IsPublished,
	}
	if req.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	id, err := s.posts.Create(ctx, post)
	if err != nil {
		s.log.Errorw("create post failed", "user_id", userID, "err", err)
		return Fail[*models.Post](KindUnexpected, "An error occurred")
	}
	post.ID = id

	s.log.Infow("post created", "id", id, "user_id", userID)
	return OK(post, "Post created successfully")
}

// Update applies a partial update: blank title/content/summary keep the
// stored value. The publish flag is applied as sent; the first transition
// to published stamps published_at, which is never cleared here.
func (s *PostService) Update(ctx context.Context, postID int64, req UpdatePostRequest) Response[*models.Post] {
	if postID <= 0 {
		return Fail[*models.Post](KindValidation, "Invalid post ID")
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[*models.Post](KindNotFound, "Post not found")
		}
		s.log.Errorw("get post for update failed", "id", postID, "err", err)
		return Fail[*models.Post](KindUnexpected, "An error occurred")
	}

	if v := strings.TrimSpace(req.Title); v != "" {
		post.Title = v
	}
	if v := strings.TrimSpace(req.Content); v != "" {
		post.Content = v
	}
	if v := strings.TrimSpace(req.Summary); v != "" {
		post.Summary = v
	}
	if v := strings.TrimSpace(req.ImageURL); v != "" {
		post.ImageURL = v
	}

	post.IsPublished = req.IsPublished
	if req.IsPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.posts.Update(ctx, post); err != nil {
		s.log.Errorw("update post failed", "id", postID, "err", err)
		return Fail[*models.Post](KindUnexpected, "An error occurred")
	}

	return OK(post, "Post updated successfully")
}

// Delete soft-deletes a post; reads stop returning it but the row survives.
func (s *PostService) Delete(ctx context.Context, postID int64) Response[string] {
	if postID <= 0 {
		return Fail[string](KindValidation, "Invalid post ID")
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[string](KindNotFound, "Post not found")
		}
		s.log.Errorw("get post for deletion failed", "id", postID, "err", err)
		return Fail[string](KindUnexpected, "An error occurred")
	}

	if _, err := s.posts.Delete(ctx, postID); err != nil {
		s.log.Errorw("delete post failed", "id", postID, "err", err)
		return Fail[string](KindUnexpected, "An error occurred")
	}

	s.log.Infow("post deleted", "id", postID)
	return OK("Post deleted successfully", "")
}
