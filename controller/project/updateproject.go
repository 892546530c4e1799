package project

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

func UpdateProjectController(router *gin.Engine, db *gorm.DB, store services.Store) {
	routes := router.Group("/project", middleware.AccessTokenMiddleware())
	{
		routes.PUT("/:projectid", func(c *gin.Context) {
			UpdateProject(c, store)
		})
		routes.PUT("/:projectid/archive", func(c *gin.Context) {
			ArchiveProject(c, store)
		})
		routes.PUT("/:projectid/unarchive", func(c *gin.Context) {
			UnarchiveProject(c, store)
		})
	}
}

func UpdateProject(c *gin.Context, store services.Store) {
	projectID, ok := ParamID(c, "projectid")
	if !ok {
		return
	}

	var request dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	project, err := store.ProjectByID(c, projectID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	upd := services.ProjectUpdate{
		ProjectName: request.ProjectName,
		Description: request.Description,
		Priority:    request.Priority,
		Archived:    request.Archived,
	}
	if request.DueDate != nil {
		due, err := time.Parse(time.RFC3339, *request.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due_date"})
			return
		}
		upd.DueDate = &due
	}

	if err := services.ApplyProjectUpdate(project, upd); err != nil {
		controller.RespondError(c, err)
		return
	}
	if err := store.SaveProject(c, project); err != nil {
		controller.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project updated successfully", "project": project})
}

func ArchiveProject(c *gin.Context, store services.Store) {
	projectID, ok := ParamID(c, "projectid")
	if !ok {
		return
	}

	project, err := store.ProjectByID(c, projectID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	services.ArchiveProject(project)
	if err := store.SaveProject(c, project); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project archived successfully"})
}

func UnarchiveProject(c *gin.Context, store services.Store) {
	projectID, ok := ParamID(c, "projectid")
	if !ok {
		return
	}

	project, err := store.ProjectByID(c, projectID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	services.UnarchiveProject(project)
	if err := store.SaveProject(c, project); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project unarchived successfully"})
}
