package review

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"projecthub/controller"
	"projecthub/middleware"
	"projecthub/services"
)

func ReviewController(router *gin.Engine, db *gorm.DB, store services.Store) {
	routes := router.Group("", middleware.AccessTokenMiddleware())
	{
		routes.GET("/task/:taskid/review", func(c *gin.Context) {
			GetTaskReview(c, store)
		})
		routes.POST("/task/:taskid/review", func(c *gin.Context) {
			AppendReviewFeedback(c, store)
		})
	}
}

func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// GetTaskReview replays the task's changelog and returns the derived
// review state. Nothing is cached: the log is the single source of
// truth and clients re-derive by re-fetching.
func GetTaskReview(c *gin.Context, store services.Store) {
	taskID, ok := paramID(c, "taskid")
	if !ok {
		return
	}

	task, err := store.TaskByID(c, taskID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	logs, err := store.ChangeLogsByTask(c, taskID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	info := services.DeriveTaskReview(logs)
	// A task with no history that never reached Done is not awaiting
	// review yet.
	if len(logs) == 0 && task.Status != string(services.TaskStatusDone) {
		info.NeedsReview = false
	}

	c.JSON(http.StatusOK, gin.H{"taskID": taskID, "review": info})
}
