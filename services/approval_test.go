package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"projecthub/model"
)

// fakeStore is an in-memory Store for exercising the approval gate
// without a database.
type fakeStore struct {
	projects map[int]*model.Project
	tasks    map[int]*model.Tasks
	logs     []model.ChangeLog
	nextID   int

	failSaveProject bool
	saveTaskCalls   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		projects: make(map[int]*model.Project),
		tasks:    make(map[int]*model.Tasks),
	}
}

func (f *fakeStore) AppendChangeLog(_ context.Context, record *model.ChangeLog) error {
	if record.UserID == 0 {
		return &ValidationError{Field: "user_id", Message: "actor is required"}
	}
	f.nextID++
	record.LogID = f.nextID
	if record.CreateAt.IsZero() {
		record.CreateAt = time.Now()
	}
	f.logs = append(f.logs, *record)
	return nil
}

func (f *fakeStore) ChangeLogsByTask(_ context.Context, taskID int) ([]model.ChangeLog, error) {
	var out []model.ChangeLog
	for _, l := range f.logs {
		if l.TaskID == taskID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeStore) ChangeLogsByProject(_ context.Context, projectID int) ([]model.ChangeLog, error) {
	var out []model.ChangeLog
	for _, l := range f.logs {
		if l.ProjectID != nil && *l.ProjectID == projectID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeStore) TaskByID(_ context.Context, taskID int) (*model.Tasks, error) {
	task, ok := f.tasks[taskID]
	if !ok {
		return nil, &NotFoundError{Entity: "task", ID: taskID}
	}
	copied := *task
	return &copied, nil
}

func (f *fakeStore) TasksByProject(_ context.Context, projectID int) ([]model.Tasks, error) {
	var out []model.Tasks
	for _, task := range f.tasks {
		if task.ProjectID == projectID {
			out = append(out, *task)
		}
	}
	return out, nil
}

func (f *fakeStore) SaveTask(_ context.Context, task *model.Tasks) error {
	f.saveTaskCalls++
	copied := *task
	f.tasks[task.TaskID] = &copied
	return nil
}

func (f *fakeStore) DeleteTaskCascade(_ context.Context, taskID int) error {
	delete(f.tasks, taskID)
	kept := f.logs[:0]
	for _, l := range f.logs {
		if l.TaskID != taskID {
			kept = append(kept, l)
		}
	}
	f.logs = kept
	return nil
}

func (f *fakeStore) ProjectByID(_ context.Context, projectID int) (*model.Project, error) {
	project, ok := f.projects[projectID]
	if !ok {
		return nil, &NotFoundError{Entity: "project", ID: projectID}
	}
	copied := *project
	return &copied, nil
}

func (f *fakeStore) ProjectsByUser(_ context.Context, userID int) ([]model.Project, error) {
	var out []model.Project
	for _, p := range f.projects {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeStore) SaveProject(_ context.Context, project *model.Project) error {
	if f.failSaveProject {
		return errors.New("simulated save failure")
	}
	copied := *project
	f.projects[project.ProjectID] = &copied
	return nil
}

func (f *fakeStore) DeleteProjectCascade(_ context.Context, projectID int) error {
	delete(f.projects, projectID)
	return nil
}

func (f *fakeStore) completionRecords(projectID int) []model.ChangeLog {
	var out []model.ChangeLog
	for _, l := range f.logs {
		if l.TaskID == 0 && l.ProjectID != nil && *l.ProjectID == projectID &&
			l.NewStatus == string(ProjectStatusCompleted) {
			out = append(out, l)
		}
	}
	return out
}

func (f *fakeStore) addProject(id int) {
	f.projects[id] = &model.Project{
		ProjectID:   id,
		UserID:      1,
		ProjectName: fmt.Sprintf("project %d", id),
		Status:      string(ProjectStatusInProgress),
	}
}

func (f *fakeStore) addTask(id, projectID int, approved bool) {
	f.tasks[id] = &model.Tasks{
		TaskID:    id,
		ProjectID: projectID,
		TaskName:  fmt.Sprintf("task %d", id),
		Status:    string(TaskStatusInProgress),
		Progress:  50,
	}
	if approved {
		pid := projectID
		f.nextID++
		f.logs = append(f.logs, model.ChangeLog{
			LogID:       f.nextID,
			Description: "Review approved: ok",
			NewStatus:   "Completed",
			UserID:      9,
			ProjectID:   &pid,
			TaskID:      id,
			CreateAt:    time.Now(),
		})
	}
}

func TestAllProjectApprovedEmptyProject(t *testing.T) {
	store := newFakeStore()
	store.addProject(1)

	approved, err := AllProjectApproved(context.Background(), store, 1)
	if err != nil {
		t.Fatal(err)
	}
	if approved {
		t.Fatal("a project with zero tasks must not be approvable")
	}
}

func TestAllProjectApprovedMixedTasks(t *testing.T) {
	store := newFakeStore()
	store.addProject(1)
	store.addTask(10, 1, true)
	store.addTask(11, 1, false)

	approved, err := AllProjectApproved(context.Background(), store, 1)
	if err != nil {
		t.Fatal(err)
	}
	if approved {
		t.Fatal("one pending task must block approval")
	}

	// The second task's latest record becomes an approval.
	pid := 1
	store.logs = append(store.logs, model.ChangeLog{
		LogID:       99,
		Description: "Review approved: also fine",
		NewStatus:   "Completed",
		UserID:      9,
		ProjectID:   &pid,
		TaskID:      11,
		CreateAt:    time.Now().Add(time.Minute),
	})
	approved, err = AllProjectApproved(context.Background(), store, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !approved {
		t.Fatal("all tasks approved, project must be approvable")
	}
}

func TestApproveProjectPreconditionFailsFast(t *testing.T) {
	store := newFakeStore()
	store.addProject(1)
	store.addTask(10, 1, false)
	logsBefore := len(store.logs)

	err := ApproveProject(context.Background(), store, 1, 9, "Reviewer")
	if !errors.Is(err, ErrApprovalPrecondition) {
		t.Fatalf("expected ErrApprovalPrecondition, got %v", err)
	}
	if len(store.logs) != logsBefore {
		t.Fatal("precondition failure must not write anything")
	}
	if store.tasks[10].Status != string(TaskStatusInProgress) {
		t.Fatal("precondition failure must not touch tasks")
	}
	if store.projects[1].Status != string(ProjectStatusInProgress) {
		t.Fatal("precondition failure must not touch the project")
	}
}

func TestApproveProjectWritesExactlyOneRecord(t *testing.T) {
	for _, taskCount := range []int{1, 50} {
		t.Run(fmt.Sprintf("%d tasks", taskCount), func(t *testing.T) {
			store := newFakeStore()
			store.addProject(1)
			for i := 0; i < taskCount; i++ {
				store.addTask(100+i, 1, true)
			}

			if err := ApproveProject(context.Background(), store, 1, 9, "Riley Chen"); err != nil {
				t.Fatal(err)
			}

			records := store.completionRecords(1)
			if len(records) != 1 {
				t.Fatalf("expected exactly one project-level record, got %d", len(records))
			}
			record := records[0]
			if record.TaskID != 0 {
				t.Fatalf("project record must use the 0 task sentinel, got %d", record.TaskID)
			}
			if record.UserID != 9 {
				t.Fatalf("record actor = %d, want 9", record.UserID)
			}
			if record.Description != "Project approved by Riley Chen" {
				t.Fatalf("unexpected description %q", record.Description)
			}

			for id, task := range store.tasks {
				if task.Status != string(TaskStatusDone) || task.Progress != 100 {
					t.Fatalf("task %d not finished: status=%q progress=%d", id, task.Status, task.Progress)
				}
			}
			if store.projects[1].Status != string(ProjectStatusCompleted) {
				t.Fatalf("project not completed: %q", store.projects[1].Status)
			}
		})
	}
}

func TestApproveProjectSecondCallIsIdempotent(t *testing.T) {
	store := newFakeStore()
	store.addProject(1)
	store.addTask(10, 1, true)

	if err := ApproveProject(context.Background(), store, 1, 9, "Reviewer"); err != nil {
		t.Fatal(err)
	}
	if err := ApproveProject(context.Background(), store, 1, 9, "Reviewer"); err != nil {
		t.Fatalf("second approval must converge, got %v", err)
	}
	if got := len(store.completionRecords(1)); got != 1 {
		t.Fatalf("expected one completion record after retry, got %d", got)
	}
}

func TestApproveProjectSkipsUnchangedTasks(t *testing.T) {
	store := newFakeStore()
	store.addProject(1)
	store.addTask(10, 1, true)
	store.tasks[10].Status = string(TaskStatusDone)
	store.tasks[10].Progress = 100

	if err := ApproveProject(context.Background(), store, 1, 9, "Reviewer"); err != nil {
		t.Fatal(err)
	}
	if store.saveTaskCalls != 0 {
		t.Fatalf("already-Done tasks must not be rewritten, got %d saves", store.saveTaskCalls)
	}
}

func TestApproveProjectInconsistentState(t *testing.T) {
	store := newFakeStore()
	store.addProject(1)
	store.addTask(10, 1, true)
	store.failSaveProject = true

	err := ApproveProject(context.Background(), store, 1, 9, "Reviewer")
	var inconsistent *InconsistentStateError
	if !errors.As(err, &inconsistent) {
		t.Fatalf("expected InconsistentStateError, got %v", err)
	}
	if inconsistent.Step != "save project" {
		t.Fatalf("expected step %q, got %q", "save project", inconsistent.Step)
	}

	// The completion record is append-only: it stays even though the
	// project transition failed.
	if got := len(store.completionRecords(1)); got != 1 {
		t.Fatalf("expected the record to remain, got %d", got)
	}
	if store.projects[1].Status == string(ProjectStatusCompleted) {
		t.Fatal("project must not be completed after a failed save")
	}

	// A retry of the whole sequence converges without duplicating the
	// record.
	store.failSaveProject = false
	if err := ApproveProject(context.Background(), store, 1, 9, "Reviewer"); err != nil {
		t.Fatalf("retry must succeed, got %v", err)
	}
	if got := len(store.completionRecords(1)); got != 1 {
		t.Fatalf("retry must not duplicate the record, got %d", got)
	}
	if store.projects[1].Status != string(ProjectStatusCompleted) {
		t.Fatal("retry must complete the project")
	}
}

func TestApproveProjectArchivedProjectFailsBeforeWrites(t *testing.T) {
	store := newFakeStore()
	store.addProject(1)
	store.projects[1].Status = string(ProjectStatusArchived)
	store.projects[1].Archived = true
	store.addTask(10, 1, true)

	err := ApproveProject(context.Background(), store, 1, 9, "Reviewer")
	var transition *InvalidTransitionError
	if !errors.As(err, &transition) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if got := len(store.completionRecords(1)); got != 0 {
		t.Fatalf("archived project must not get a completion record, got %d", got)
	}
	if store.tasks[10].Status != string(TaskStatusInProgress) {
		t.Fatal("archived project approval must not touch tasks")
	}
}
