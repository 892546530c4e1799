package project

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"projecthub/controller"
	"projecthub/middleware"
	"projecthub/services"
)

func DeleteProjectController(router *gin.Engine, db *gorm.DB, store services.Store) {
	router.DELETE("/project/:projectid", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		DeleteProject(c, store)
	})
}

func DeleteProject(c *gin.Context, store services.Store) {
	userID := c.MustGet("userId").(uint)
	projectID, ok := ParamID(c, "projectid")
	if !ok {
		return
	}

	project, err := store.ProjectByID(c, projectID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	// Only the owner or an admin may delete.
	if project.UserID != int(userID) && !controller.IsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}
	if !services.CanDeleteProject(project) {
		c.JSON(http.StatusConflict, gin.H{"error": "Project must be archived or still in Todo to be deleted"})
		return
	}

	if err := store.DeleteProjectCascade(c, projectID); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully", "projectID": projectID})
}
