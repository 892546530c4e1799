package model

import (
	"time"
)

type Tasks struct {
	TaskID    int        `gorm:"column:task_id;primaryKey;autoIncrement"`
	ProjectID int        `gorm:"column:project_id;not null"`
	TaskName  string     `gorm:"column:task_name;type:varchar(200);not null"`
	Contents  string     `gorm:"column:contents;type:text"`
	Assignee  string     `gorm:"column:assignee;type:varchar(100)"`
	Status    string     `gorm:"column:status;type:enum('Todo','In Progress','Done');default:'Todo';not null"`
	Priority  string     `gorm:"column:priority;type:enum('Low','Medium','High','Critical')"`
	Progress  int        `gorm:"column:progress;default:0;not null"`
	DueDate   *time.Time `gorm:"column:due_date"`
	CreateBy  int        `gorm:"column:create_by"`
	CreateAt  time.Time  `gorm:"column:create_at;autoCreateTime"`
	UpdateAt  time.Time  `gorm:"column:update_at;autoUpdateTime"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID;references:ProjectID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
	Creator User    `gorm:"foreignKey:CreateBy;references:UserID;constraint:OnUpdate:CASCADE"`
}

func (Tasks) TableName() string {
	return "tasks"
}
