package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"projecthub/middleware"
	"projecthub/services"
)

func UserController(router *gin.Engine, db *gorm.DB) {
	router.GET("/user", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		GetProfile(c, db)
	})
}

func GetProfile(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	user, err := services.GetUserdata(db, int(userID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userID":   user.UserID,
		"email":    user.Email,
		"name":     user.Name,
		"role":     user.Role,
		"createAt": user.CreateAt,
	})
}
