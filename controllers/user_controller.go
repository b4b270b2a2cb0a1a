package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Artur-creator-1/blogapp/models"
	"github.com/Artur-creator-1/blogapp/services"
	"github.com/Artur-creator-1/blogapp/utils"
)

// UserController exposes user operations over HTTP.
type UserController struct {
	users *services.UserService
}

// NewUserController creates a new UserController instance.
func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// Register creates a new account.
func (u *UserController) Register(ctx *gin.Context) {
	var req services.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badPayload[*models.User](ctx)
		return
	}
	req.DisplayName = utils.SanitizeText(req.DisplayName)

	renderCreated(ctx, u.users.Register(ctx.Request.Context(), req))
}

// GetUser returns a single active user by id.
func (u *UserController) GetUser(ctx *gin.Context) {
	render(ctx, u.users.GetByID(ctx.Request.Context(), pathID(ctx, "id")))
}

// GetUserByUsername returns a single active user by username.
func (u *UserController) GetUserByUsername(ctx *gin.Context) {
	render(ctx, u.users.GetByUsername(ctx.Request.Context(), ctx.Param("username")))
}

// ListUsers returns all active users, newest first.
func (u *UserController) ListUsers(ctx *gin.Context) {
	render(ctx, u.users.GetAll(ctx.Request.Context()))
}

// UpdateUser applies a partial profile update.
func (u *UserController) UpdateUser(ctx *gin.Context) {
	var req services.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badPayload[*models.User](ctx)
		return
	}
	req.DisplayName = utils.SanitizeText(req.DisplayName)
	req.Bio = utils.Sanitize(req.Bio)

	render(ctx, u.users.Update(ctx.Request.Context(), pathID(ctx, "id"), req))
}

// DeleteUser deactivates an account.
func (u *UserController) DeleteUser(ctx *gin.Context) {
	render(ctx, u.users.Delete(ctx.Request.Context(), pathID(ctx, "id")))
}

// ChangePassword swaps a user's password after verifying the old one.
func (u *UserController) ChangePassword(ctx *gin.Context) {
	var req struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badPayload[bool](ctx)
		return
	}

	render(ctx, u.users.ChangePassword(ctx.Request.Context(), pathID(ctx, "id"), req.OldPassword, req.NewPassword))
}
