package services

import (
	"errors"
	"fmt"
	"smartpark/database"
	"smartpark/models"

	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDuplicateVehicle = errors.New("vehicle number already registered")
	ErrVehicleNotFound  = errors.New("vehicle not found")
)

// isDuplicateKey 判斷是否為唯一索引衝突（MySQL 1062，其他驅動靠 GORM 轉譯）
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// RegisterVehicle 登記車輛，車牌重複時回傳 ErrDuplicateVehicle
func RegisterVehicle(vehicle *models.Vehicle) error {
	// 檢查是否有重複的車牌
	var existing models.Vehicle
	err := database.DB.Where("vehicle_number = ?", vehicle.VehicleNumber).First(&existing).Error
	if err == nil {
		return ErrDuplicateVehicle
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.Errorf("Failed to check for duplicate vehicle number: %v", err)
		return fmt.Errorf("failed to check for duplicate vehicle number: %w", err)
	}

	if err := database.DB.Create(vehicle).Error; err != nil {
		// 唯一索引是並發註冊下的最後防線
		if isDuplicateKey(err) {
			return ErrDuplicateVehicle
		}
		logrus.Errorf("Failed to register vehicle: %v", err)
		return fmt.Errorf("failed to register vehicle: %w", err)
	}

	logrus.Infof("Successfully registered vehicle %s with ID %d", vehicle.VehicleNumber, vehicle.ID)
	return nil
}

// UpdateVehicle 局部更新車輛資料，回傳更新後的紀錄
func UpdateVehicle(id int, updates map[string]interface{}) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := database.DB.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle by ID %d: %w", id, err)
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&vehicle).Updates(updates).Error; err != nil {
			logrus.Errorf("Failed to update vehicle %d: %v", id, err)
			return nil, fmt.Errorf("failed to update vehicle %d: %w", id, err)
		}
		// 重新讀取，確保回傳的是資料庫實際狀態
		if err := database.DB.First(&vehicle, id).Error; err != nil {
			return nil, fmt.Errorf("failed to reload vehicle %d: %w", id, err)
		}
	}

	logrus.Infof("Successfully updated vehicle %d", id)
	return &vehicle, nil
}

// GetAllVehicles 查詢所有車輛
func GetAllVehicles() ([]models.Vehicle, error) {
	vehicles := make([]models.Vehicle, 0)
	if err := database.DB.Find(&vehicles).Error; err != nil {
		logrus.Errorf("Failed to fetch vehicles: %v", err)
		return nil, fmt.Errorf("failed to fetch vehicles: %w", err)
	}
	return vehicles, nil
}

// DeleteVehicle 刪除車輛（硬刪除，不連動停車紀錄）
func DeleteVehicle(id int) error {
	result := database.DB.Delete(&models.Vehicle{}, id)
	if result.Error != nil {
		logrus.Errorf("Failed to delete vehicle %d: %v", id, result.Error)
		return fmt.Errorf("failed to delete vehicle %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrVehicleNotFound
	}

	logrus.Infof("Successfully deleted vehicle %d", id)
	return nil
}
