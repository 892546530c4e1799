package services

import (
	"strings"
	"time"

	"projecthub/model"
)

const (
	maxTaskNameLen = 200
	maxContentsLen = 5000
	maxAssigneeLen = 100
)

// ValidateTaskFields checks the user-supplied task fields and parses the
// optional due date. New tasks always start in Todo with progress 0.
func ValidateTaskFields(name, contents, assignee, dueDate string) (*time.Time, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "task_name", Message: "must not be empty"}
	}
	if len(name) > maxTaskNameLen {
		return nil, &ValidationError{Field: "task_name", Message: "must be at most 200 characters"}
	}
	if len(contents) > maxContentsLen {
		return nil, &ValidationError{Field: "contents", Message: "must be at most 5000 characters"}
	}
	if assignee != "" {
		if strings.TrimSpace(assignee) == "" {
			return nil, &ValidationError{Field: "assignee", Message: "must not be blank"}
		}
		if len(assignee) > maxAssigneeLen {
			return nil, &ValidationError{Field: "assignee", Message: "must be at most 100 characters"}
		}
	}
	if dueDate == "" {
		return nil, nil
	}
	due, err := time.Parse(time.RFC3339, dueDate)
	if err != nil {
		return nil, &ValidationError{Field: "due_date", Message: "must be an RFC 3339 timestamp"}
	}
	return &due, nil
}

// ChangeTaskStatus applies a validated status transition and keeps
// progress consistent with it: Done forces 100, Todo forces 0, and
// In Progress leaves progress untouched. Requesting the current status
// is a no-op. The returned bool reports whether the task changed.
func ChangeTaskStatus(task *model.Tasks, next TaskStatus) (bool, error) {
	current := TaskStatus(task.Status)
	if next == current {
		return false, nil
	}
	if !CanTransition(current, next) {
		return false, &InvalidTransitionError{From: string(current), To: string(next)}
	}

	task.Status = string(next)
	switch next {
	case TaskStatusDone:
		task.Progress = 100
	case TaskStatusTodo:
		task.Progress = 0
	}
	return true, nil
}

// ApplyTaskProgress sets progress and syncs status with it so that
// Done <=> 100 and Todo => 0 hold after any interleaving of
// ChangeTaskStatus and ApplyTaskProgress calls.
func ApplyTaskProgress(task *model.Tasks, progress int) (bool, error) {
	if progress < 0 || progress > 100 {
		return false, &ValidationError{Field: "progress", Message: "must be between 0 and 100"}
	}
	if task.Progress == progress && statusForProgress(progress) == TaskStatus(task.Status) {
		return false, nil
	}

	task.Progress = progress
	task.Status = string(statusForProgress(progress))
	return true, nil
}

func statusForProgress(progress int) TaskStatus {
	switch {
	case progress == 100:
		return TaskStatusDone
	case progress == 0:
		return TaskStatusTodo
	default:
		return TaskStatusInProgress
	}
}
