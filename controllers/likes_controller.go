package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Artur-creator-1/blogapp/services"
)

// LikesController exposes like operations for posts and comments.
type LikesController struct {
	likes *services.LikesService
}

// NewLikesController creates a new LikesController instance.
func NewLikesController(likes *services.LikesService) *LikesController {
	return &LikesController{likes: likes}
}

type likeRequest struct {
	UserID int64 `json:"user_id"`
}

// LikePost records a like; repeating it is a no-op success.
func (l *LikesController) LikePost(ctx *gin.Context) {
	var req likeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badPayload[services.LikeOutcome](ctx)
		return
	}
	render(ctx, l.likes.LikePost(ctx.Request.Context(), pathID(ctx, "id"), req.UserID))
}

// UnlikePost removes a like if present.
func (l *LikesController) UnlikePost(ctx *gin.Context) {
	var req likeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badPayload[bool](ctx)
		return
	}
	render(ctx, l.likes.UnlikePost(ctx.Request.Context(), pathID(ctx, "id"), req.UserID))
}

// IsPostLiked reports whether the user likes the post.
func (l *LikesController) IsPostLiked(ctx *gin.Context) {
	render(ctx, l.likes.IsPostLiked(ctx.Request.Context(), pathID(ctx, "id"), pathID(ctx, "userId")))
}

// PostLikesCount returns the number of likes on a post.
func (l *LikesController) PostLikesCount(ctx *gin.Context) {
	render(ctx, l.likes.PostLikesCount(ctx.Request.Context(), pathID(ctx, "id")))
}

// LikeComment records a like on a comment.
func (l *LikesController) LikeComment(ctx *gin.Context) {
	var req likeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badPayload[services.LikeOutcome](ctx)
		return
	}
	render(ctx, l.likes.LikeComment(ctx.Request.Context(), pathID(ctx, "commentId"), req.UserID))
}

// UnlikeComment removes a like from a comment if present.
func (l *LikesController) UnlikeComment(ctx *gin.Context) {
	var req likeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badPayload[bool](ctx)
		return
	}
	render(ctx, l.likes.UnlikeComment(ctx.Request.Context(), pathID(ctx, "commentId"), req.UserID))
}

// IsCommentLiked reports whether the user likes the comment.
func (l *LikesController) IsCommentLiked(ctx *gin.Context) {
	render(ctx, l.likes.IsCommentLiked(ctx.Request.Context(), pathID(ctx, "commentId"), pathID(ctx, "userId")))
}

// CommentLikesCount returns the number of likes on a comment.
func (l *LikesController) CommentLikesCount(ctx *gin.Context) {
	render(ctx, l.likes.CommentLikesCount(ctx.Request.Context(), pathID(ctx, "commentId")))
}
