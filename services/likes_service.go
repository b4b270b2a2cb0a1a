package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Artur-creator-1/blogapp/repos"
)

// LikeOutcome distinguishes a fresh like from a repeated one. Both are
// successes; the caller decides whether the distinction matters.
type LikeOutcome string

const (
	LikeCreated      LikeOutcome = "created"
	LikeAlreadyLiked LikeOutcome = "already_liked"
)

// LikesService owns like semantics for posts and comments. Liking is
// idempotent: the insert is an on-conflict no-op, so a double-click never
// produces a second row or an error.
type LikesService struct {
	postLikes    repos.LikeRepo
	commentLikes repos.LikeRepo
	posts        repos.PostRepo
	comments     repos.CommentRepo
	log          *zap.SugaredLogger
}

// NewLikesService wires a LikesService to its repositories.
func NewLikesService(postLikes, commentLikes repos.LikeRepo, posts repos.PostRepo, comments repos.CommentRepo, log *zap.SugaredLogger) *LikesService {
	return &LikesService{
		postLikes:    postLikes,
		commentLikes: commentLikes,
		posts:        posts,
		comments:     comments,
		log:          log,
	}
}

// LikePost records that userID likes postID. The post must exist; liking an
// already-liked post succeeds with LikeAlreadyLiked.
func (s *LikesService) LikePost(ctx context.Context, postID, userID int64) Response[LikeOutcome] {
	if postID <= 0 || userID <= 0 {
		return Fail[LikeOutcome](KindValidation, "Invalid post ID or user ID")
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[LikeOutcome](KindNotFound, "Post not found")
		}
		s.log.Errorw("get post for like failed", "post_id", postID, "err", err)
		return Fail[LikeOutcome](KindUnexpected, "An error occurred")
	}

	created, err := s.postLikes.Like(ctx, postID, userID)
	if err != nil {
		s.log.Errorw("like post failed", "post_id", postID, "user_id", userID, "err", err)
		return Fail[LikeOutcome](KindUnexpected, "An error occurred")
	}
	if !created {
		return OK(LikeAlreadyLiked, "Post already liked")
	}

	s.log.Infow("post liked", "post_id", postID, "user_id", userID)
	return OK(LikeCreated, "Post liked successfully")
}

// UnlikePost removes the like if present. Unliking a post the user never
// liked succeeds and reports false.
func (s *LikesService) UnlikePost(ctx context.Context, postID, userID int64) Response[bool] {
	if postID <= 0 || userID <= 0 {
		return Fail[bool](KindValidation, "Invalid post ID or user ID")
	}

	removed, err := s.postLikes.Unlike(ctx, postID, userID)
	if err != nil {
		s.log.Errorw("unlike post failed", "post_id", postID, "user_id", userID, "err", err)
		return Fail[bool](KindUnexpected, "An error occurred")
	}
	return OK(removed, "Post unliked successfully")
}

// IsPostLiked reports whether userID currently likes postID.
func (s *LikesService) IsPostLiked(ctx context.Context, postID, userID int64) Response[bool] {
	if postID <= 0 || userID <= 0 {
		return Fail[bool](KindValidation, "Invalid post ID or user ID")
	}

	liked, err := s.postLikes.IsLiked(ctx, postID, userID)
	if err != nil {
		s.log.Errorw("post like lookup failed", "post_id", postID, "user_id", userID, "err", err)
		return Fail[bool](KindUnexpected, "An error occurred")
	}
	return OK(liked, "")
}

// PostLikesCount returns the number of likes on a post. A post id that was
// never liked yields zero, whether or not the post exists.
func (s *LikesService) PostLikesCount(ctx context.Context, postID int64) Response[int64] {
	if postID <= 0 {
		return Fail[int64](KindValidation, "Invalid post ID")
	}

	count, err := s.postLikes.Count(ctx, postID)
	if err != nil {
		s.log.Errorw("post like count failed", "post_id", postID, "err", err)
		return Fail[int64](KindUnexpected, "An error occurred")
	}
	return OK(count, "")
}

// LikeComment mirrors LikePost for comments.
func (s *LikesService) LikeComment(ctx context.Context, commentID, userID int64) Response[LikeOutcome] {
	if commentID <= 0 || userID <= 0 {
		return Fail[LikeOutcome](KindValidation, "Invalid comment ID or user ID")
	}

	if _, err := s.comments.GetByID(ctx, commentID); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return Fail[LikeOutcome](KindNotFound, "Comment not found")
		}
		s.log.Errorw("get comment for like failed", "comment_id", commentID, "err", err)
		return Fail[LikeOutcome](KindUnexpected, "An error occurred")
	}

	created, err := s.commentLikes.Like(ctx, commentID, userID)
	if err != nil {
		s.log.Errorw("like comment failed", "comment_id", commentID, "user_id", userID, "err", err)
		return Fail[LikeOutcome](KindUnexpected, "An error occurred")
	}
	if !created {
		return OK(LikeAlreadyLiked, "Comment already liked")
	}

	s.log.Infow("comment liked", "comment_id", commentID, "user_id", userID)
	return OK(LikeCreated, "Comment liked successfully")
}

// UnlikeComment mirrors UnlikePost for comments.
func (s *LikesService) UnlikeComment(ctx context.Context, commentID, userID int64) Response[bool] {
	if commentID <= 0 || userID <= 0 {
		return Fail[bool](KindValidation, "Invalid comment ID or user ID")
	}

	removed, err := s.commentLikes.Unlike(ctx, commentID, userID)
	if err != nil {
		s.log.Errorw("unlike comment failed", "comment_id", commentID, "user_id", userID, "err", err)
		return Fail[bool](KindUnexpected, "An error occurred")
	}
	return OK(removed, "Comment unliked successfully")
}

// IsCommentLiked reports whether userID currently likes commentID.
func (s *LikesService) IsCommentLiked(ctx context.Context, commentID, userID int64) Response[bool] {
	if commentID <= 0 || userID <= 0 {
		return Fail[bool](KindValidation, "Invalid comment ID or user ID")
	}

	liked, err := s.commentLikes.IsLiked(ctx, commentID, userID)
	if err != nil {
		s.log.Errorw("comment like lookup failed", "comment_id", commentID, "user_id", userID, "err", err)
		return Fail[bool](KindUnexpected, "An error occurred")
	}
	return OK(liked, "")
}

// CommentLikesCount returns the number of likes on a comment.
func (s *LikesService) CommentLikesCount(ctx context.Context, commentID int64) Response[int64] {
	if commentID <= 0 {
		return Fail[int64](KindValidation, "Invalid comment ID")
	}

	count, err := s.commentLikes.Count(ctx, commentID)
	if err != nil {
		s.log.Errorw("comment like count failed", "comment_id", commentID, "err", err)
		return Fail[int64](KindUnexpected, "An error occurred")
	}
	return OK(count, "")
}
