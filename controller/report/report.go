package report

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"projecthub/dto"
	"projecthub/middleware"
	"projecthub/model"
)

var validCategories = map[string]bool{
	"Suggestions":            true,
	"Incorrect Information":  true,
	"Review Workflow Issues": true,
	"Problems or Issues":     true,
	"Security Issues":        true,
}

func ReportController(router *gin.Engine, db *gorm.DB) {
	router.POST("/report", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateReport(c, db)
	})
}

func CreateReport(c *gin.Context, db *gorm.DB) {
	userID := c.MustGet("userId").(uint)

	var request dto.CreateReportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if !validCategories[request.Category] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	newReport := model.Report{
		UserID:      int(userID),
		Description: request.Description,
		Category:    request.Category,
	}
	if err := db.Create(&newReport).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Report submitted successfully",
		"reportID": newReport.ReportID,
	})
}
