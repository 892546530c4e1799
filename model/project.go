package model

import (
	"time"
)

type Project struct {
	ProjectID   int        `gorm:"column:project_id;primaryKey;autoIncrement"`
	UserID      int        `gorm:"column:user_id;not null"`
	ProjectName string     `gorm:"column:project_name;type:varchar(200);not null"`
	Description string     `gorm:"column:description;type:text"`
	Status      string     `gorm:"column:status;type:enum('Todo','In Progress','Completed','On Hold','Archived');default:'Todo';not null"`
	Archived    bool       `gorm:"column:archived;default:false;not null"`
	Priority    string     `gorm:"column:priority;type:enum('Low','Medium','High','Critical')"`
	DueDate     *time.Time `gorm:"column:due_date"`
	CreateAt    time.Time  `gorm:"column:create_at;autoCreateTime"`
	UpdateAt    time.Time  `gorm:"column:update_at;autoUpdateTime"`

	// Relations
	Owner User `gorm:"foreignKey:UserID;references:UserID;constraint:OnUpdate:CASCADE"`
}

func (Project) TableName() string {
	return "projects"
}
