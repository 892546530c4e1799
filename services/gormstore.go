package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"projecthub/model"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps the MySQL connection in the Store port consumed by
// the core and the controllers.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) AppendChangeLog(ctx context.Context, record *model.ChangeLog) error {
	if record.UserID == 0 {
		return &ValidationError{Field: "user_id", Message: "actor is required"}
	}
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *gormStore) ChangeLogsByTask(ctx context.Context, taskID int) ([]model.ChangeLog, error) {
	var logs []model.ChangeLog
	if err := s.db.WithContext(ctx).Where("task_id = ?", taskID).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *gormStore) ChangeLogsByProject(ctx context.Context, projectID int) ([]model.ChangeLog, error) {
	var logs []model.ChangeLog
	if err := s.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *gormStore) TaskByID(ctx context.Context, taskID int) (*model.Tasks, error) {
	var task model.Tasks
	if err := s.db.WithContext(ctx).Where("task_id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "task", ID: taskID}
		}
		return nil, err
	}
	return &task, nil
}

func (s *gormStore) TasksByProject(ctx context.Context, projectID int) ([]model.Tasks, error) {
	var tasks []model.Tasks
	if err := s.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *gormStore) SaveTask(ctx context.Context, task *model.Tasks) error {
	return s.db.WithContext(ctx).Save(task).Error
}

// DeleteTaskCascade removes a task together with its changelog records.
// A task is never deleted while referenced by the log.
func (s *gormStore) DeleteTaskCascade(ctx context.Context, taskID int) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Where("task_id = ?", taskID).Delete(&model.ChangeLog{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("task_id = ?", taskID).Delete(&model.Tasks{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (s *gormStore) ProjectByID(ctx context.Context, projectID int) (*model.Project, error) {
	var project model.Project
	if err := s.db.WithContext(ctx).Where("project_id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "project", ID: projectID}
		}
		return nil, err
	}
	return &project, nil
}

func (s *gormStore) ProjectsByUser(ctx context.Context, userID int) ([]model.Project, error) {
	var projects []model.Project
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *gormStore) SaveProject(ctx context.Context, project *model.Project) error {
	return s.db.WithContext(ctx).Save(project).Error
}

// DeleteProjectCascade removes a project, its tasks and every changelog
// record scoped to either of them.
func (s *gormStore) DeleteProjectCascade(ctx context.Context, projectID int) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Where("project_id = ?", projectID).Delete(&model.ChangeLog{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("project_id = ?", projectID).Delete(&model.Tasks{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("project_id = ?", projectID).Delete(&model.Project{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
