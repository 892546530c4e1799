package project

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"projecthub/controller"
	"projecthub/dto"
	"projecthub/middleware"
	"projecthub/model"
	"projecthub/services"
)

func CreateProjectController(router *gin.Engine, db *gorm.DB, store services.Store) {
	router.POST("/project", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateProject(c, store)
	})
}

func CreateProject(c *gin.Context, store services.Store) {
	userID := c.MustGet("userId").(uint)

	var request dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	dueDate, err := services.ValidateProjectFields(request.ProjectName, request.Description, request.DueDate, time.Now())
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	if request.Priority != "" && !services.ValidPriority(request.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown priority"})
		return
	}

	newProject := model.Project{
		UserID:      int(userID),
		ProjectName: request.ProjectName,
		Description: request.Description,
		Status:      string(services.ProjectStatusTodo),
		Priority:    request.Priority,
		DueDate:     dueDate,
	}
	if err := store.SaveProject(c, &newProject); err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Project created successfully",
		"projectID": newProject.ProjectID,
	})
}
