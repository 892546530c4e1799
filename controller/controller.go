package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"projecthub/services"
)

// RespondError maps the core error kinds to HTTP statuses. An approval
// precondition violation comes back as 409 so the UI can render the
// action as disabled instead of flashing an error.
func RespondError(c *gin.Context, err error) {
	var validation *services.ValidationError
	var transition *services.InvalidTransitionError
	var notFound *services.NotFoundError
	var inconsistent *services.InconsistentStateError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error(), "field": validation.Field})
	case errors.As(err, &transition):
		c.JSON(http.StatusBadRequest, gin.H{"error": transition.Error()})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.Is(err, services.ErrApprovalPrecondition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "disabled": true})
	case errors.As(err, &inconsistent):
		c.JSON(http.StatusInternalServerError, gin.H{"error": inconsistent.Error(), "step": inconsistent.Step})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// IsAdmin reports whether the authenticated request carries the admin
// role. Destructive operations require it unless the caller owns the
// resource.
func IsAdmin(c *gin.Context) bool {
	role, ok := c.Get("role")
	if !ok {
		return false
	}
	r, ok := role.(string)
	return ok && r == "admin"
}
