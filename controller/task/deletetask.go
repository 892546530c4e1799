package task

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"projecthub/controller"
	"projecthub/middleware"
	"projecthub/services"
)

func DeleteTaskController(router *gin.Engine, db *gorm.DB, store services.Store) {
	router.DELETE("/task/:taskid", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		DeleteTask(c, store)
	})
}

func DeleteTask(c *gin.Context, store services.Store) {
	userID := c.MustGet("userId").(uint)
	taskID, ok := paramID(c, "taskid")
	if !ok {
		return
	}

	task, err := store.TaskByID(c, taskID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	project, err := store.ProjectByID(c, task.ProjectID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	// Only the project owner or an admin may delete. Changelog records
	// referencing the task are removed in the same transaction.
	if project.UserID != int(userID) && !controller.IsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if err := store.DeleteTaskCascade(c, taskID); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully", "taskID": taskID})
}
