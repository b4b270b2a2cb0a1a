package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Artur-creator-1/blogapp/models"
	"github.com/Artur-creator-1/blogapp/services"
	"github.com/Artur-creator-1/blogapp/utils"
)

// PostController exposes post operations over HTTP.
type PostController struct {
	posts *services.PostService
}

// NewPostController creates a new PostController instance.
func NewPostController(posts *services.PostService) *PostController {
	return &PostController{posts: posts}
}

// CreatePost creates a post owned by the user in the path.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req services.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badPayload[*models.Post](ctx)
		return
	}
	req.Title = utils.SanitizeText(req.Title)
	req.Content = utils.Sanitize(req.Content)
	req.Summary = utils.Sanitize(req.Summary)

	renderCreated(ctx, p.posts.Create(ctx.Request.Context(), pathID(ctx, "id"), req))
}

// GetPost returns a single post.
func (p *PostController) GetPost(ctx *gin.Context) {
	render(ctx, p.posts.GetByID(ctx.Request.Context(), pathID(ctx, "id")))
}

// ListPosts returns all posts, newest first.
func (p *PostController) ListPosts(ctx *gin.Context) {
	render(ctx, p.posts.GetAll(ctx.Request.Context()))
}

// ListUserPosts returns a user's posts, newest first.
func (p *PostController) ListUserPosts(ctx *gin.Context) {
	render(ctx, p.posts.GetByUserID(ctx.Request.Context(), pathID(ctx, "id")))
}

// UpdatePost applies a partial update to a post.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	var req services.UpdatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badPayload[*models.Post](ctx)
		return
	}
	req.Title = utils.SanitizeText(req.Title)
	req.Content = utils.Sanitize(req.Content)
	req.Summary = utils.Sanitize(req.Summary)

	render(ctx, p.posts.Update(ctx.Request.Context(), pathID(ctx, "id"), req))
}

// DeletePost soft-deletes a post.
func (p *PostController) DeletePost(ctx *gin.Context) {
	render(ctx, p.posts.Delete(ctx.Request.Context(), pathID(ctx, "id")))
}
