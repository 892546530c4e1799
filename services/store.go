package services

import (
	"context"

	"projecthub/model"
)

// Store is the narrow persistence boundary the core consumes. Changelog
// reads return records unsorted; DeriveTaskReview orders them itself.
type Store interface {
	AppendChangeLog(ctx context.Context, record *model.ChangeLog) error
	ChangeLogsByTask(ctx context.Context, taskID int) ([]model.ChangeLog, error)
	ChangeLogsByProject(ctx context.Context, projectID int) ([]model.ChangeLog, error)

	TaskByID(ctx context.Context, taskID int) (*model.Tasks, error)
	TasksByProject(ctx context.Context, projectID int) ([]model.Tasks, error)
	SaveTask(ctx context.Context, task *model.Tasks) error
	DeleteTaskCascade(ctx context.Context, taskID int) error

	ProjectByID(ctx context.Context, projectID int) (*model.Project, error)
	ProjectsByUser(ctx context.Context, userID int) ([]model.Project, error)
	SaveProject(ctx context.Context, project *model.Project) error
	DeleteProjectCascade(ctx context.Context, projectID int) error
}
