package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Artur-creator-1/blogapp/config"
	"github.com/Artur-creator-1/blogapp/controllers"
	"github.com/Artur-creator-1/blogapp/middleware"
	"github.com/Artur-creator-1/blogapp/services"
	"github.com/Artur-creator-1/blogapp/utils"
)

// Services bundles the service layer for route wiring.
type Services struct {
	Users    *services.UserService
	Posts    *services.PostService
	Comments *services.CommentService
	Tags     *services.TagService
	Likes    *services.LikesService
}

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(svcs Services) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace the default console logger with a file-based zap logger.
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))
	r.Use(middleware.RequestID())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	userController := controllers.NewUserController(svcs.Users)
	postController := controllers.NewPostController(svcs.Posts)
	commentController := controllers.NewCommentController(svcs.Comments)
	tagController := controllers.NewTagController(svcs.Tags)
	likesController := controllers.NewLikesController(svcs.Likes)

	api := r.Group("/api/v1")

	usersGroup := api.Group("/users")
	usersGroup.POST("", middleware.RateLimitMiddleware(), userController.Register)
	usersGroup.GET("", userController.ListUsers)
	usersGroup.GET("/:id", userController.GetUser)
	usersGroup.GET("/by-username/:username", userController.GetUserByUsername)
	usersGroup.PUT("/:id", userController.UpdateUser)
	usersGroup.DELETE("/:id", userController.DeleteUser)
	usersGroup.POST("/:id/change-password", middleware.RateLimitMiddleware(), userController.ChangePassword)
	usersGroup.GET("/:id/posts", postController.ListUserPosts)
	usersGroup.GET("/:id/comments", commentController.ListUserComments)
	usersGroup.POST("/:id/posts", postController.CreatePost)

	postsGroup := api.Group("/posts")
	postsGroup.GET("", postController.ListPosts)
	postsGroup.GET("/:id", postController.GetPost)
	postsGroup.PUT("/:id", postController.UpdatePost)
	postsGroup.DELETE("/:id", postController.DeletePost)
	postsGroup.GET("/:id/comments", commentController.ListPostComments)
	postsGroup.POST("/:id/comments", commentController.CreateComment)
	postsGroup.GET("/:id/tags", tagController.ListPostTags)
	postsGroup.POST("/:id/tags/:tagId", tagController.AttachTag)
	postsGroup.DELETE("/:id/tags/:tagId", tagController.DetachTag)
	postsGroup.POST("/:id/likes", likesController.LikePost)
	postsGroup.DELETE("/:id/likes", likesController.UnlikePost)
	postsGroup.GET("/:id/likes/count", likesController.PostLikesCount)
	postsGroup.GET("/:id/likes/:userId", likesController.IsPostLiked)

	commentsGroup := api.Group("/comments")
	commentsGroup.GET("/:commentId", commentController.GetComment)
	commentsGroup.PUT("/:commentId", commentController.UpdateComment)
	commentsGroup.DELETE("/:commentId", commentController.DeleteComment)
	commentsGroup.POST("/:commentId/likes", likesController.LikeComment)
	commentsGroup.DELETE("/:commentId/likes", likesController.UnlikeComment)
	commentsGroup.GET("/:commentId/likes/count", likesController.CommentLikesCount)
	commentsGroup.GET("/:commentId/likes/:userId", likesController.IsCommentLiked)

	tagsGroup := api.Group("/tags")
	tagsGroup.POST("", tagController.CreateTag)
	tagsGroup.GET("", tagController.ListTags)
	tagsGroup.GET("/:id", tagController.GetTag)
	tagsGroup.GET("/by-slug/:slug", tagController.GetTagBySlug)
	tagsGroup.PUT("/:id", tagController.UpdateTag)
	tagsGroup.DELETE("/:id", tagController.DeleteTag)

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})

	return r
}
