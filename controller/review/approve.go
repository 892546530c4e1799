package review

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"projecthub/controller"
	"projecthub/middleware"
	"projecthub/services"
)

func ApproveProjectController(router *gin.Engine, db *gorm.DB, store services.Store) {
	routes := router.Group("/project", middleware.AccessTokenMiddleware())
	{
		routes.GET("/:projectid/approval", func(c *gin.Context) {
			CanApproveProject(c, store)
		})
		routes.POST("/:projectid/approve", func(c *gin.Context) {
			ApproveProject(c, db, store)
		})
	}
}

func CanApproveProject(c *gin.Context, store services.Store) {
	projectID, ok := paramID(c, "projectid")
	if !ok {
		return
	}

	if _, err := store.ProjectByID(c, projectID); err != nil {
		controller.RespondError(c, err)
		return
	}
	approved, err := services.AllProjectApproved(c, store, projectID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projectID": projectID, "canApprove": approved})
}

func ApproveProject(c *gin.Context, db *gorm.DB, store services.Store) {
	userID := c.MustGet("userId").(uint)
	projectID, ok := paramID(c, "projectid")
	if !ok {
		return
	}

	actor, err := services.GetUserdata(db, int(userID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := services.ApproveProject(c, store, projectID, actor.UserID, actor.Name); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project approved successfully", "projectID": projectID})
}
