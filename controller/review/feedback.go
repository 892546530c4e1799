package review

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"projecthub/controller"
	"projecthub/dto"
	"projecthub/model"
	"projecthub/services"
)

// AppendReviewFeedback writes one changelog record carrying a review
// decision. The record's NewStatus is the human-readable status string
// the derivation engine classifies, and the remark carries the
// structured payload; legacy-format records remain readable.
func AppendReviewFeedback(c *gin.Context, store services.Store) {
	userID := c.MustGet("userId").(uint)
	taskID, ok := paramID(c, "taskid")
	if !ok {
		return
	}

	var request dto.ReviewFeedbackRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if !services.ValidReviewAction(request.Action) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown review action"})
		return
	}

	task, err := store.TaskByID(c, taskID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}

	var newStatus, description string
	switch services.ReviewAction(request.Action) {
	case services.ActionApprove:
		newStatus = "Completed"
		description = fmt.Sprintf("Review approved: %s", request.Notes)
	case services.ActionRequestChanges:
		newStatus = "Request Changes"
		description = "Changes requested"
	case services.ActionHoldDiscussion:
		newStatus = "On Hold"
		description = "Held for discussion"
	}

	remark := services.EncodeRemark(request.Notes, request.ChangeDetails)
	projectID := task.ProjectID
	record := model.ChangeLog{
		Description: description,
		OldStatus:   task.Status,
		NewStatus:   newStatus,
		Remark:      &remark,
		UserID:      int(userID),
		ProjectID:   &projectID,
		TaskID:      task.TaskID,
	}
	if err := store.AppendChangeLog(c, &record); err != nil {
		controller.RespondError(c, err)
		return
	}

	logs, err := store.ChangeLogsByTask(c, taskID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Review feedback recorded",
		"review":  services.DeriveTaskReview(logs),
	})
}
