package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"projecthub/middleware"
	"projecthub/model"
)

func AdminController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/admin", middleware.AccessTokenMiddleware(), middleware.AdminMiddleware())
	{
		routes.GET("/users", func(c *gin.Context) {
			ListUsers(c, db)
		})
		routes.GET("/projects", func(c *gin.Context) {
			ListProjects(c, db)
		})
	}
}

func ListUsers(c *gin.Context, db *gorm.DB) {
	var users []model.User
	if err := db.Select("user_id", "email", "name", "role", "create_at").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func ListProjects(c *gin.Context, db *gorm.DB) {
	var projects []model.Project
	if err := db.Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}
