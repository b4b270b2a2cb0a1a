package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Artur-creator-1/blogapp/services"
)

// render writes a service envelope with the HTTP status derived from its kind.
func render[T any](ctx *gin.Context, resp services.Response[T]) {
	ctx.JSON(statusFor(resp.Kind, http.StatusOK), resp)
}

// renderCreated is render with 201 for the success case.
func renderCreated[T any](ctx *gin.Context, resp services.Response[T]) {
	ctx.JSON(statusFor(resp.Kind, http.StatusCreated), resp)
}

func statusFor(kind services.Kind, okStatus int) int {
	switch kind {
	case services.KindOK:
		return okStatus
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindConflict:
		return http.StatusConflict
	case services.KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// pathID parses a numeric path parameter. Non-numeric input maps to zero,
// which the services reject as invalid.
func pathID(ctx *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func badPayload[T any](ctx *gin.Context) {
	render(ctx, services.Fail[T](services.KindValidation, "Invalid request payload"))
}
