package model

import (
	"time"
)

type RefreshToken struct {
	TokenID   int       `gorm:"column:token_id;primaryKey;autoIncrement"`
	UserID    int       `gorm:"column:user_id;not null"`
	JTI       string    `gorm:"column:jti;type:varchar(36);not null;unique"`
	TokenHash string    `gorm:"column:token_hash;type:varchar(255);not null"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null"`
	CreateAt  time.Time `gorm:"column:create_at;autoCreateTime"`

	// Relations
	User User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE"`
}

func (RefreshToken) TableName() string {
	return "refresh_token"
}
