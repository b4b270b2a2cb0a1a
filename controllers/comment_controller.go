package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Artur-creator-1/blogapp/models"
	"github.com/Artur-creator-1/blogapp/services"
	"github.com/Artur-creator-1/blogapp/utils"
)

// CommentController exposes comment operations over HTTP.
type CommentController struct {
	comments *services.CommentService
}

// NewCommentController creates a new CommentController instance.
func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

// CreateComment adds a comment to the post in the path.
func (c *CommentController) CreateComment(ctx *gin.Context) {
	var req struct {
		UserID          int64  `json:"user_id"`
		Content         string `json:"content"`
		ParentCommentID *int64 `json:"parent_comment_id"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badPayload[*models.Comment](ctx)
		return
	}

	body := services.CreateCommentRequest{
		Content:         utils.Sanitize(req.Content),
		ParentCommentID: req.ParentCommentID,
	}
	renderCreated(ctx, c.comments.Create(ctx.Request.Context(), pathID(ctx, "id"), req.UserID, body))
}

// GetComment returns a single comment.
func (c *CommentController) GetComment(ctx *gin.Context) {
	render(ctx, c.comments.GetByID(ctx.Request.Context(), pathID(ctx, "commentId")))
}

// ListPostComments returns a post's comments, newest first.
func (c *CommentController) ListPostComments(ctx *gin.Context) {
	render(ctx, c.comments.GetByPostID(ctx.Request.Context(), pathID(ctx, "id")))
}

// ListUserComments returns a user's comments, newest first.
func (c *CommentController) ListUserComments(ctx *gin.Context) {
	render(ctx, c.comments.GetByUserID(ctx.Request.Context(), pathID(ctx, "id")))
}

// UpdateComment replaces the content and marks the comment edited.
func (c *CommentController) UpdateComment(ctx *gin.Context) {
	var req services.UpdateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badPayload[*models.Comment](ctx)
		return
	}
	req.Content = utils.Sanitize(req.Content)

	render(ctx, c.comments.Update(ctx.Request.Context(), pathID(ctx, "commentId"), req))
}

// DeleteComment soft-deletes a comment.
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	render(ctx, c.comments.Delete(ctx.Request.Context(), pathID(ctx, "commentId")))
}
