package task

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"projecthub/controller"
	"projecthub/dto"
	"projecthub/middleware"
	"projecthub/model"
	"projecthub/services"
)

func CreateTaskController(router *gin.Engine, db *gorm.DB, store services.Store) {
	router.POST("/task", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateTask(c, store)
	})
}

func CreateTask(c *gin.Context, store services.Store) {
	userID := c.MustGet("userId").(uint)

	var request dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if _, err := store.ProjectByID(c, request.ProjectID); err != nil {
		controller.RespondError(c, err)
		return
	}

	dueDate, err := services.ValidateTaskFields(request.TaskName, request.Contents, request.Assignee, request.DueDate)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	if request.Priority != "" && !services.ValidPriority(request.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown priority"})
		return
	}

	newTask := model.Tasks{
		ProjectID: request.ProjectID,
		TaskName:  request.TaskName,
		Contents:  request.Contents,
		Assignee:  request.Assignee,
		Status:    string(services.TaskStatusTodo),
		Priority:  request.Priority,
		Progress:  0,
		DueDate:   dueDate,
		CreateBy:  int(userID),
	}
	if err := store.SaveTask(c, &newTask); err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"taskID":  newTask.TaskID,
	})
}
