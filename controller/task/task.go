package task

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"projecthub/controller"
	"projecthub/middleware"
	"projecthub/services"
)

func TaskController(router *gin.Engine, db *gorm.DB, store services.Store) {
	routes := router.Group("", middleware.AccessTokenMiddleware())
	{
		routes.GET("/task/:taskid", func(c *gin.Context) {
			GetTask(c, store)
		})
		routes.GET("/project/:projectid/tasks", func(c *gin.Context) {
			ListProjectTasks(c, store)
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

func GetTask(c *gin.Context, store services.Store) {
	taskID, ok := paramID(c, "taskid")
	if !ok {
		return
	}

	task, err := store.TaskByID(c, taskID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

func ListProjectTasks(c *gin.Context, store services.Store) {
	projectID, ok := paramID(c, "projectid")
	if !ok {
		return
	}

	if _, err := store.ProjectByID(c, projectID); err != nil {
		controller.RespondError(c, err)
		return
	}
	tasks, err := store.TasksByProject(c, projectID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}
