package model

import (
	"time"
)

// ChangeLog rows are append-only. Current review state is always derived
// by replaying a task's records, never stored.
type ChangeLog struct {
	LogID       int       `gorm:"column:log_id;primaryKey;autoIncrement"`
	Description string    `gorm:"column:description;type:text"`
	OldStatus   string    `gorm:"column:old_status;type:varchar(64)"`
	NewStatus   string    `gorm:"column:new_status;type:varchar(64);not null"`
	Remark      *string   `gorm:"column:remark;type:text"`
	UserID      int       `gorm:"column:user_id;not null"`
	ProjectID   *int      `gorm:"column:project_id"`
	TaskID      int       `gorm:"column:task_id;not null;default:0"`
	CreateAt    time.Time `gorm:"column:create_at;autoCreateTime"`

	// Relations
	// TaskID 0 marks a project-level entry, so no foreign key on it.
	Actor User `gorm:"foreignKey:UserID;references:UserID;constraint:OnUpdate:CASCADE"`
}

func (ChangeLog) TableName() string {
	return "changelogs"
}
