package changelog

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"projecthub/controller"
	"projecthub/middleware"
	"projecthub/services"
)

func ChangeLogController(router *gin.Engine, db *gorm.DB, store services.Store) {
	routes := router.Group("", middleware.AccessTokenMiddleware())
	{
		routes.GET("/task/:taskid/changelogs", func(c *gin.Context) {
			ListTaskChangeLogs(c, store)
		})
		routes.GET("/project/:projectid/changelogs", func(c *gin.Context) {
			ListProjectChangeLogs(c, store)
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

func ListTaskChangeLogs(c *gin.Context, store services.Store) {
	taskID, ok := paramID(c, "taskid")
	if !ok {
		return
	}

	if _, err := store.TaskByID(c, taskID); err != nil {
		controller.RespondError(c, err)
		return
	}
	logs, err := store.ChangeLogsByTask(c, taskID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	// The store returns records unsorted; order them here for display.
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CreateAt.Before(logs[j].CreateAt)
	})
	c.JSON(http.StatusOK, gin.H{"taskID": taskID, "changelogs": logs})
}

func ListProjectChangeLogs(c *gin.Context, store services.Store) {
	projectID, ok := paramID(c, "projectid")
	if !ok {
		return
	}

	if _, err := store.ProjectByID(c, projectID); err != nil {
		controller.RespondError(c, err)
		return
	}
	logs, err := store.ChangeLogsByProject(c, projectID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CreateAt.Before(logs[j].CreateAt)
	})
	c.JSON(http.StatusOK, gin.H{"projectID": projectID, "changelogs": logs})
}
