package main

import (
	"github.com/Artur-creator-1/blogapp/config"
	"github.com/Artur-creator-1/blogapp/models"
	"github.com/Artur-creator-1/blogapp/repos"
	"github.com/Artur-creator-1/blogapp/routes"
	"github.com/Artur-creator-1/blogapp/services"
	"github.com/Artur-creator-1/blogapp/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Tag{},
		&models.PostTag{},
		&models.PostLike{},
		&models.CommentLike{},
	)

	r := repos.NewGormRepos(db)
	svcs := routes.Services{
		Users:    services.NewUserService(r.Users, utils.Sugar),
		Posts:    services.NewPostService(r.Posts, utils.Sugar),
		Comments: services.NewCommentService(r.Comments, r.Posts, utils.Sugar),
		Tags:     services.NewTagService(r.Tags, r.Posts, utils.Sugar),
		Likes:    services.NewLikesService(r.PostLikes, r.CommentLikes, r.Posts, r.Comments, utils.Sugar),
	}

	router := routes.SetupRouter(svcs)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, router); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
