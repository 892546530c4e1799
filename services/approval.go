package services

import (
	"context"
	"fmt"

	"projecthub/model"
)

// AllProjectApproved reports whether every task of the project derives
// to an approved review state. A project with no tasks is never
// approvable.
func AllProjectApproved(ctx context.Context, store Store, projectID int) (bool, error) {
	tasks, err := store.TasksByProject(ctx, projectID)
	if err != nil {
		return false, fmt.Errorf("list project tasks: %w", err)
	}
	if len(tasks) == 0 {
		return false, nil
	}

	for _, task := range tasks {
		logs, err := store.ChangeLogsByTask(ctx, task.TaskID)
		if err != nil {
			return false, fmt.Errorf("list task changelogs: %w", err)
		}
		if DeriveTaskReview(logs).Status != ReviewApproved {
			return false, nil
		}
	}
	return true, nil
}

// ApproveProject runs the project approval sequence:
//
//  1. move every task of the project to Done (idempotent),
//  2. append exactly one project-scoped changelog record (TaskID 0
//     sentinel), guarded against a concurrent duplicate,
//  3. transition the project to Completed.
//
// The precondition is checked before any write and a violation is
// reported as ErrApprovalPrecondition. Once the completion record is
// written it is never retracted; a failure after that point surfaces as
// an InconsistentStateError so the caller can retry the whole sequence
// or alert an operator. Retries converge because every step is
// idempotent.
func ApproveProject(ctx context.Context, store Store, projectID, actorID int, actorName string) error {
	approved, err := AllProjectApproved(ctx, store, projectID)
	if err != nil {
		return err
	}
	if !approved {
		return ErrApprovalPrecondition
	}

	project, err := store.ProjectByID(ctx, projectID)
	if err != nil {
		return err
	}
	if ProjectStatus(project.Status) == ProjectStatusArchived {
		// Fail fast: completing an archived project would only be
		// detected after the log record was already written.
		return &InvalidTransitionError{From: project.Status, To: string(ProjectStatusCompleted)}
	}

	tasks, err := store.TasksByProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("list project tasks: %w", err)
	}
	for i := range tasks {
		task := &tasks[i]
		changed, err := ApplyTaskProgress(task, 100)
		if err != nil {
			return fmt.Errorf("finish task %d: %w", task.TaskID, err)
		}
		if !changed {
			continue
		}
		if err := store.SaveTask(ctx, task); err != nil {
			return fmt.Errorf("save task %d: %w", task.TaskID, err)
		}
	}

	recorded, err := hasCompletionRecord(ctx, store, projectID)
	if err != nil {
		return err
	}
	if !recorded {
		record := &model.ChangeLog{
			Description: fmt.Sprintf("Project approved by %s", actorName),
			OldStatus:   project.Status,
			NewStatus:   string(ProjectStatusCompleted),
			UserID:      actorID,
			ProjectID:   &projectID,
			TaskID:      0,
		}
		if err := store.AppendChangeLog(ctx, record); err != nil {
			return fmt.Errorf("append project changelog: %w", err)
		}
	}

	if err := CompleteProject(project); err != nil {
		return &InconsistentStateError{Step: "complete project", Err: err}
	}
	if err := store.SaveProject(ctx, project); err != nil {
		return &InconsistentStateError{Step: "save project", Err: err}
	}
	return nil
}

// hasCompletionRecord checks for an existing project-level completion
// entry, the guard that keeps a concurrent second approval from writing
// a duplicate record.
func hasCompletionRecord(ctx context.Context, store Store, projectID int) (bool, error) {
	logs, err := store.ChangeLogsByProject(ctx, projectID)
	if err != nil {
		return false, fmt.Errorf("list project changelogs: %w", err)
	}
	for _, log := range logs {
		if log.TaskID == 0 && log.NewStatus == string(ProjectStatusCompleted) {
			return true, nil
		}
	}
	return false, nil
}
