package services

import (
	"strings"
	"time"

	"projecthub/model"
)

const (
	maxProjectNameLen = 200
	maxDescriptionLen = 1000
)

// ValidateProjectFields checks user-supplied project fields at creation
// time. The due date, when present, must parse and must not be in the
// past relative to now.
func ValidateProjectFields(name, description, dueDate string, now time.Time) (*time.Time, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "project_name", Message: "must not be empty"}
	}
	if len(name) > maxProjectNameLen {
		return nil, &ValidationError{Field: "project_name", Message: "must be at most 200 characters"}
	}
	if len(description) > maxDescriptionLen {
		return nil, &ValidationError{Field: "description", Message: "must be at most 1000 characters"}
	}
	if dueDate == "" {
		return nil, nil
	}
	due, err := time.Parse(time.RFC3339, dueDate)
	if err != nil {
		return nil, &ValidationError{Field: "due_date", Message: "must be an RFC 3339 timestamp"}
	}
	if due.Before(now) {
		return nil, &ValidationError{Field: "due_date", Message: "must not be in the past"}
	}
	return &due, nil
}

// ProjectUpdate carries the optional fields of a partial update. Nil
// means the field is left untouched.
type ProjectUpdate struct {
	ProjectName *string
	Description *string
	Priority    *string
	DueDate     *time.Time
	Archived    *bool
}

// ApplyProjectUpdate mutates the project in place. Flipping Archived to
// true forces the status to Archived.
func ApplyProjectUpdate(project *model.Project, upd ProjectUpdate) error {
	if upd.ProjectName != nil {
		if strings.TrimSpace(*upd.ProjectName) == "" {
			return &ValidationError{Field: "project_name", Message: "must not be empty"}
		}
		if len(*upd.ProjectName) > maxProjectNameLen {
			return &ValidationError{Field: "project_name", Message: "must be at most 200 characters"}
		}
		project.ProjectName = *upd.ProjectName
	}
	if upd.Description != nil {
		if len(*upd.Description) > maxDescriptionLen {
			return &ValidationError{Field: "description", Message: "must be at most 1000 characters"}
		}
		project.Description = *upd.Description
	}
	if upd.Priority != nil {
		if !ValidPriority(*upd.Priority) {
			return &ValidationError{Field: "priority", Message: "unknown priority"}
		}
		project.Priority = *upd.Priority
	}
	if upd.DueDate != nil {
		project.DueDate = upd.DueDate
	}
	if upd.Archived != nil {
		if *upd.Archived {
			ArchiveProject(project)
		} else if project.Archived {
			UnarchiveProject(project)
		}
	}
	return nil
}

func ArchiveProject(project *model.Project) {
	project.Archived = true
	project.Status = string(ProjectStatusArchived)
}

// UnarchiveProject clears the archived flag. The status is reset to Todo
// only when it was Archived, so an unrelated status is never clobbered.
func UnarchiveProject(project *model.Project) {
	project.Archived = false
	if ProjectStatus(project.Status) == ProjectStatusArchived {
		project.Status = string(ProjectStatusTodo)
	}
}

// CompleteProject marks the project Completed. Archived projects cannot
// be completed.
func CompleteProject(project *model.Project) error {
	if ProjectStatus(project.Status) == ProjectStatusArchived {
		return &InvalidTransitionError{
			From: project.Status,
			To:   string(ProjectStatusCompleted),
		}
	}
	project.Status = string(ProjectStatusCompleted)
	return nil
}

// CanDeleteProject reports whether the project may be deleted: only
// archived projects and projects still in Todo qualify.
func CanDeleteProject(project *model.Project) bool {
	return project.Archived || ProjectStatus(project.Status) == ProjectStatusTodo
}
