package wire

import (
	"Blogicum/internal/api"
	"Blogicum/internal/api/handler"
	"Blogicum/internal/job"
	"Blogicum/internal/pkg/cron"
	"Blogicum/internal/repository"
	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	locationRepo := repository.NewLocationRepo(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepo(db)

	postService := service.NewPostService(postRepo, categoryRepo, locationRepo, commentRepo, userRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)
	userService := service.NewUserService(userRepo)

	handlers := &api.HandlersGroup{
		PostHandler:     handler.NewPostHandler(postService),
		CommentHandler:  handler.NewCommentHandler(commentService),
		CategoryHandler: handler.NewCategoryHandler(postService),
		ProfileHandler:  handler.NewProfileHandler(postService, userService),
		UserHandler:     handler.NewUserHandler(userService),
		MediaHandler:    handler.NewMediaHandler(),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewImageCleanupJob())

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
