package project

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"projecthub/controller"
	"projecthub/middleware"
	"projecthub/services"
)

func ProjectController(router *gin.Engine, db *gorm.DB, store services.Store) {
	routes := router.Group("/project", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			ListProjects(c, store)
		})
		routes.GET("/:projectid", func(c *gin.Context) {
			GetProject(c, store)
		})
	}
}

// ParamID parses a numeric path parameter shared by the project and
// task route families.
func ParamID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

func ListProjects(c *gin.Context, store services.Store) {
	userID := c.MustGet("userId").(uint)

	projects, err := store.ProjectsByUser(c, int(userID))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func GetProject(c *gin.Context, store services.Store) {
	projectID, ok := ParamID(c, "projectid")
	if !ok {
		return
	}

	project, err := store.ProjectByID(c, projectID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}
