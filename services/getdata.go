package services

import (
	"gorm.io/gorm"

	"projecthub/model"
)

func GetUserdata(db *gorm.DB, userID int) (*model.User, error) {
	var user model.User
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
