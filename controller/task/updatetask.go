package task

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"projecthub/controller"
	"projecthub/dto"
	"projecthub/middleware"
	"projecthub/services"
)

func UpdateTaskController(router *gin.Engine, db *gorm.DB, store services.Store) {
	router.PUT("/task/:taskid", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateTask(c, store)
	})
}

func UpdateTask(c *gin.Context, store services.Store) {
	taskID, ok := paramID(c, "taskid")
	if !ok {
		return
	}

	var request dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	task, err := store.TaskByID(c, taskID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	name := task.TaskName
	contents := task.Contents
	assignee := task.Assignee
	if request.TaskName != nil {
		name = *request.TaskName
	}
	if request.Contents != nil {
		contents = *request.Contents
	}
	if request.Assignee != nil {
		assignee = *request.Assignee
	}

	dueDateStr := ""
	if request.DueDate != nil {
		dueDateStr = *request.DueDate
	}
	dueDate, err := services.ValidateTaskFields(name, contents, assignee, dueDateStr)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	if request.Priority != nil && !services.ValidPriority(*request.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown priority"})
		return
	}

	task.TaskName = name
	task.Contents = contents
	task.Assignee = assignee
	if request.Priority != nil {
		task.Priority = *request.Priority
	}
	if request.DueDate != nil {
		task.DueDate = dueDate
	}
	task.UpdateAt = time.Now()

	if err := store.SaveTask(c, task); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task updated successfully", "task": task})
}
