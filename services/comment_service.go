package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/Artur-creator-1/blogapp/models"
	"github.com/Artur-creator-1/blogapp/repos"
)

// CreateCommentRequest carries the fields accepted when creating a comment.
// ParentCommentID is stored as supplied; it is not checked against existing
// comments.
type CreateCommentRequest struct {
	Content         string `json:"content"`
	ParentCommentID *int64 `json:"parent_comment_id"`
}

// UpdateCommentRequest carries the new comment content.
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// CommentService owns comment business rules, including the synchronous
// post-existence check before any comment is written.
type CommentService struct {
	comments repos.CommentRepo
	posts    repos.PostRepo
	log      *zap.SugaredLogger
}

// NewCommentService wires a CommentService to its repositories.
func NewCommentService(comments repos.CommentRepo, posts repos.PostRepo, log *zap.SugaredLogger) *CommentService {
	return &CommentService{comments: comments, posts: posts, log: log}
}

func (s *CommentService) GetByID(ctx context.Context, id int64) Response[*models.Comment] {
	if id <= 0 {
		return Fail[*models.Comment](KindValidation, "Invalid comment ID")
	}

	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[*models.Comment](KindNotFound, "Comment not found")
		}
		s.log.Errorw("get comment failed", "id", id, "err", err)
		return Fail[*models.Comment](KindUnexpected, "An error occurred")
	}

	return OK(comment, "")
}

// GetByPostID lists a post's comments, newest first. A missing post is a
// not-found failure, distinct from a post with zero comments which succeeds
// with an empty list.
func (s *CommentService) GetByPostID(ctx context.Context, postID int64) Response[[]models.Comment] {
	if postID <= 0 {
		return Fail[[]models.Comment](KindValidation, "Invalid post ID")
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[[]models.Comment](KindNotFound, "Post not found")
		}
		s.log.Errorw("get post for comments failed", "post_id", postID, "err", err)
		return Fail[[]models.Comment](KindUnexpected, "An error occurred")
	}

	comments, err := s.comments.GetByPostID(ctx, postID)
	if err != nil {
		s.log.Errorw("list comments failed", "post_id", postID, "err", err)
		return Fail[[]models.Comment](KindUnexpected, "An error occurred")
	}
	if len(comments) == 0 {
		return OK([]models.Comment{}, "No comments found")
	}
	return OK(comments, "")
}

// GetByUserID lists a user's comments, newest first.
func (s *CommentService) GetByUserID(ctx context.Context, userID int64) Response[[]models.Comment] {
	if userID <= 0 {
		return Fail[[]models.Comment](KindValidation, "Invalid user ID")
	}
	comments, err := s.comments.GetByUserID(ctx, userID)
	if err != nil {
		s.log.Errorw("list user comments failed", "user_id", userID, "err", err)
		return Fail[[]models.Comment](KindUnexpected, "An error occurred")
	}
	if len(comments) == 0 {
		return OK([]models.Comment{}, "No comments found")
	}
	return OK(comments, "")
}

// Create validates the content and verifies the post exists before writing.
// No row is written when the post is missing.
func (s *CommentService) Create(ctx context.Context, postID, userID int64, req CreateCommentRequest) Response[*models.Comment] {
	if postID <= 0 || userID <= 0 {
		return Fail[*models.Comment](KindValidation, "Invalid post ID or user ID")
	}
	if errs := validateComment(req.Content); len(errs) > 0 {
		s.log.Infow("comment rejected", "post_id", postID, "errors", errs)
		return Fail[*models.Comment](KindValidation, "Validation failed", errs...)
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[*models.Comment](KindNotFound, "Post not found")
		}
		s.log.Errorw("get post for comment failed", "post_id", postID, "err", err)
		return Fail[*models.Comment](KindUnexpected, "An error occurred")
	}

	comment := &models.Comment{
		PostID:          postID,
		UserID:          userID,
		ParentCommentID: req.ParentCommentID,
		Content:         strings.TrimSpace(req.Content),
	}

	id, err := s.comments.Create(ctx, comment)
	if err != nil {
		s.log.Errorw("create comment failed", "post_id", postID, "err", err)
		return Fail[*models.Comment](KindUnexpected, "An error occurred")
	}
	comment.ID = id

	s.log.Infow("comment created", "id", id, "post_id", postID, "user_id", userID)
	return OK(comment, "Comment created successfully")
}

// Update replaces the content and marks the comment edited, even when the
// trimmed content is unchanged.
func (s *CommentService) Update(ctx context.Context, commentID int64, req UpdateCommentRequest) Response[*models.Comment] {
	if commentID <= 0 {
		return Fail[*models.Comment](KindValidation, "Invalid comment ID")
	}
	if errs := validateComment(req.Content); len(errs) > 0 {
		return Fail[*models.Comment](KindValidation, "Validation failed", errs...)
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[*models.Comment](KindNotFound, "Comment not found")
		}
		s.log.Errorw("get comment for update failed", "id", commentID, "err", err)
		return Fail[*models.Comment](KindUnexpected, "An error occurred")
	}

	comment.Content = strings.TrimSpace(req.Content)
	comment.IsEdited = true

	if err := s.comments.Update(ctx, comment); err != nil {
		s.log.Errorw("update comment failed", "id", commentID, "err", err)
		return Fail[*models.Comment](KindUnexpected, "An error occurred")
	}

	return OK(comment, "Comment updated successfully")
}

// Delete soft-deletes a comment.
func (s *CommentService) Delete(ctx context.Context, commentID int64) Response[string] {
	if commentID <= 0 {
		return Fail[string](KindValidation, "Invalid comment ID")
	}

	if _, err := s.comments.GetByID(ctx, commentID); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[string](KindNotFound, "Comment not found")
		}
		s.log.Errorw("get comment for deletion failed", "id", commentID, "err", err)
		return Fail[string](KindUnexpected, "An error occurred")
	}

	if _, err := s.comments.Delete(ctx, commentID); err != nil {
		s.log.Errorw("delete comment failed", "id", commentID, "err", err)
		return Fail[string](KindUnexpected, "An error occurred")
	}

	s.log.Infow("comment deleted", "id", commentID)
	return OK("Comment deleted successfully", "")
}
