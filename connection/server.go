package connection

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"projecthub/controller/admin"
	"projecthub/controller/auth"
	"projecthub/controller/changelog"
	"projecthub/controller/project"
	"projecthub/controller/report"
	"projecthub/controller/review"
	"projecthub/controller/task"
	"projecthub/controller/user"
	"projecthub/scheduler"
	"projecthub/services"
)

func StartServer() {
	router := gin.Default()

	DB, err := DBConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	store := services.NewGormStore(DB)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	auth.AuthController(router, DB)

	user.UserController(router, DB)
	admin.AdminController(router, DB)
	report.ReportController(router, DB)

	project.ProjectController(router, DB, store)
	project.CreateProjectController(router, DB, store)
	project.UpdateProjectController(router, DB, store)
	project.DeleteProjectController(router, DB, store)

	task.TaskController(router, DB, store)
	task.CreateTaskController(router, DB, store)
	task.UpdateTaskController(router, DB, store)
	task.StatusTaskController(router, DB, store)
	task.DeleteTaskController(router, DB, store)

	review.ReviewController(router, DB, store)
	review.ApproveProjectController(router, DB, store)

	changelog.ChangeLogController(router, DB, store)

	scheduler.Start(DB)

	router.Run()
}
