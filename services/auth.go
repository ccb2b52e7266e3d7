package services

import (
	"errors"
	"fmt"
	"smartpark/database"
	"smartpark/models"
	"smartpark/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginUser 驗證帳密，帳號不存在與密碼錯誤回傳同一個錯誤
func LoginUser(username, password string) (*models.User, error) {
	var user models.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.Infof("Login failed: user %s not found", username)
			return nil, ErrInvalidCredentials
		}
		logrus.Errorf("Failed to look up user %s: %v", username, err)
		return nil, fmt.Errorf("failed to look up user %s: %w", username, err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		logrus.Infof("Login failed: invalid password for user %s", username)
		return nil, ErrInvalidCredentials
	}

	logrus.Infof("User %s logged in successfully", username)
	return &user, nil
}

// SeedUser 建立種子帳號，已存在則跳過
func SeedUser(username, password string) error {
	var existing models.User
	if err := database.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		logrus.Infof("User %s already exists, skipping seed", username)
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for existing user: %w", err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: hashed,
	}
	if err := database.DB.Create(user).Error; err != nil {
		return fmt.Errorf("failed to seed user %s: %w", username, err)
	}

	logrus.Infof("Seeded user %s (%s)", username, user.ID)
	return nil
}
