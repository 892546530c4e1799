package task

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"projecthub/controller"
	"projecthub/dto"
	"projecthub/middleware"
	"projecthub/model"
	"projecthub/services"
)

func StatusTaskController(router *gin.Engine, db *gorm.DB, store services.Store) {
	routes := router.Group("/task", middleware.AccessTokenMiddleware())
	{
		routes.PUT("/:taskid/status", func(c *gin.Context) {
			ChangeTaskStatus(c, store)
		})
		routes.PUT("/:taskid/progress", func(c *gin.Context) {
			UpdateTaskProgress(c, store)
		})
	}
}

func ChangeTaskStatus(c *gin.Context, store services.Store) {
	userID := c.MustGet("userId").(uint)
	taskID, ok := paramID(c, "taskid")
	if !ok {
		return
	}

	var request dto.TaskStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if !services.ValidTaskStatus(request.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	task, err := store.TaskByID(c, taskID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	oldStatus := task.Status
	changed, err := services.ChangeTaskStatus(task, services.TaskStatus(request.Status))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	if !changed {
		c.JSON(http.StatusOK, gin.H{"message": "Status unchanged", "task": task})
		return
	}

	if err := store.SaveTask(c, task); err != nil {
		controller.RespondError(c, err)
		return
	}
	appendStatusChangeLog(c, store, task, oldStatus, int(userID))

	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully", "task": task})
}

func UpdateTaskProgress(c *gin.Context, store services.Store) {
	userID := c.MustGet("userId").(uint)
	taskID, ok := paramID(c, "taskid")
	if !ok {
		return
	}

	var request dto.TaskProgressRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.Progress == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	task, err := store.TaskByID(c, taskID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	oldStatus := task.Status
	changed, err := services.ApplyTaskProgress(task, *request.Progress)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	if !changed {
		c.JSON(http.StatusOK, gin.H{"message": "Progress unchanged", "task": task})
		return
	}

	if err := store.SaveTask(c, task); err != nil {
		controller.RespondError(c, err)
		return
	}
	if task.Status != oldStatus {
		appendStatusChangeLog(c, store, task, oldStatus, int(userID))
	}

	c.JSON(http.StatusOK, gin.H{"message": "Progress updated successfully", "task": task})
}

// appendStatusChangeLog records a status transition in the append-only
// changelog. The record is informational; failing to write it does not
// roll back the already-saved task.
func appendStatusChangeLog(c *gin.Context, store services.Store, task *model.Tasks, oldStatus string, actorID int) {
	projectID := task.ProjectID
	record := model.ChangeLog{
		Description: fmt.Sprintf("Status changed from %s to %s", oldStatus, task.Status),
		OldStatus:   oldStatus,
		NewStatus:   task.Status,
		UserID:      actorID,
		ProjectID:   &projectID,
		TaskID:      task.TaskID,
	}
	if err := store.AppendChangeLog(c, &record); err != nil {
		c.Error(err)
	}
}
