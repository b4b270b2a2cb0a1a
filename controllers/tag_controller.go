package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Artur-creator-1/blogapp/models"
	"github.com/Artur-creator-1/blogapp/services"
	"github.com/Artur-creator-1/blogapp/utils"
)

// TagController exposes tag operations over HTTP.
type TagController struct {
	tags *services.TagService
}

// NewTagController creates a new TagController instance.
func NewTagController(tags *services.TagService) *TagController {
	return &TagController{tags: tags}
}

// CreateTag creates a tag with a unique slug.
func (t *TagController) CreateTag(ctx *gin.Context) {
	var req services.CreateTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badPayload[*models.Tag](ctx)
		return
	}
	req.Name = utils.SanitizeText(req.Name)
	req.Description = utils.Sanitize(req.Description)

	renderCreated(ctx, t.tags.Create(ctx.Request.Context(), req))
}

// GetTag returns a single active tag by id.
func (t *TagController) GetTag(ctx *gin.Context) {
	render(ctx, t.tags.GetByID(ctx.Request.Context(), pathID(ctx, "id")))
}

// GetTagBySlug returns a single active tag by slug.
func (t *TagController) GetTagBySlug(ctx *gin.Context) {
	render(ctx, t.tags.GetBySlug(ctx.Request.Context(), ctx.Param("slug")))
}

// ListTags returns active tags ordered by popularity.
func (t *TagController) ListTags(ctx *gin.Context) {
	render(ctx, t.tags.GetAll(ctx.Request.Context()))
}

// ListPostTags returns the tags attached to a post.
func (t *TagController) ListPostTags(ctx *gin.Context) {
	render(ctx, t.tags.GetByPostID(ctx.Request.Context(), pathID(ctx, "id")))
}

// UpdateTag applies a partial update; the slug never changes.
func (t *TagController) UpdateTag(ctx *gin.Context) {
	var req services.UpdateTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badPayload[*models.Tag](ctx)
		return
	}
	req.Name = utils.SanitizeText(req.Name)
	req.Description = utils.Sanitize(req.Description)

	render(ctx, t.tags.Update(ctx.Request.Context(), pathID(ctx, "id"), req))
}

// DeleteTag deactivates a tag.
func (t *TagController) DeleteTag(ctx *gin.Context) {
	render(ctx, t.tags.Delete(ctx.Request.Context(), pathID(ctx, "id")))
}

// AttachTag links a tag to a post.
func (t *TagController) AttachTag(ctx *gin.Context) {
	render(ctx, t.tags.AttachToPost(ctx.Request.Context(), pathID(ctx, "id"), pathID(ctx, "tagId")))
}

// DetachTag removes a tag from a post.
func (t *TagController) DetachTag(ctx *gin.Context) {
	render(ctx, t.tags.DetachFromPost(ctx.Request.Context(), pathID(ctx, "id"), pathID(ctx, "tagId")))
}
