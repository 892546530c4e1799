package model

import (
	"time"
)

type User struct {
	UserID         int       `gorm:"column:user_id;primaryKey;autoIncrement"`
	Email          string    `gorm:"column:email;type:varchar(255);not null;unique"`
	Name           string    `gorm:"column:name;type:varchar(100);not null"`
	HashedPassword string    `gorm:"column:hashed_password;type:varchar(255);not null"`
	Role           string    `gorm:"column:role;type:enum('user','admin');default:'user';not null"`
	CreateAt       time.Time `gorm:"column:create_at;autoCreateTime"`
}

func (User) TableName() string {
	return "user"
}
