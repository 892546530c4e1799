package model

import (
	"time"
)

type Report struct {
	ReportID    int       `gorm:"column:report_id;primaryKey;autoIncrement"`
	UserID      int       `gorm:"column:user_id;not null"`
	Description string    `gorm:"column:description;type:text;not null"`
	Category    string    `gorm:"column:category;type:enum('Suggestions','Incorrect Information','Review Workflow Issues','Problems or Issues','Security Issues');not null"`
	CreateAt    time.Time `gorm:"column:create_at;autoCreateTime"`

	// Relations
	User User `gorm:"foreignKey:UserID;references:UserID;constraint:OnUpdate:CASCADE"`
}

func (Report) TableName() string {
	return "reports"
}
