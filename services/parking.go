package services

import (
	"errors"
	"fmt"
	"smartpark/database"
	"smartpark/models"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrAlreadyParked   = errors.New("vehicle already parked")
	ErrAlreadyExited   = errors.New("session already exited")
)

// RecordEntry 進場開單：同一車牌已有 PARKED 紀錄時回傳 ErrAlreadyParked
func RecordEntry(vehicleNumber, slotNumber string, entryImageURL *string) (*models.ParkingSession, error) {
	// 先查一次，讓正常流程拿到乾淨的錯誤
	var existing models.ParkingSession
	err := database.DB.
		Where("vehicle_number = ? AND status = ?", vehicleNumber, models.StatusParked).
		First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyParked
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.Errorf("Failed to check for active session: %v", err)
		return nil, fmt.Errorf("failed to check for active session: %w", err)
	}

	activeKey := vehicleNumber
	session := &models.ParkingSession{
		VehicleNumber: vehicleNumber,
		SlotNumber:    slotNumber,
		EntryTime:     time.Now().UTC(),
		Status:        models.StatusParked,
		EntryImageURL: entryImageURL,
		ActiveKey:     &activeKey,
	}

	if err := database.DB.Create(session).Error; err != nil {
		// 並發進場撞上 active_key 唯一索引，視同已在場
		if isDuplicateKey(err) {
			return nil, ErrAlreadyParked
		}
		logrus.Errorf("Failed to create parking session: %v", err)
		return nil, fmt.Errorf("failed to create parking session: %w", err)
	}

	logrus.Infof("Entry recorded: %s at slot %s (session %d)", vehicleNumber, slotNumber, session.ID)
	return session, nil
}

// RecordExit 離場結算：計費並將狀態轉為 EXITED。此更新為終局，之後不再異動該筆紀錄
func RecordExit(sessionID int) (*models.ParkingSession, error) {
	var session models.ParkingSession
	if err := database.DB.First(&session, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session %d: %w", sessionID, err)
	}

	if session.Status == models.StatusExited {
		return nil, ErrAlreadyExited
	}

	exitTime := time.Now().UTC()
	totalAmount, err := ComputeFee(session.EntryTime, exitTime)
	if err != nil {
		return nil, fmt.Errorf("failed to compute fee for session %d: %w", sessionID, err)
	}

	// 條件更新鎖在 PARKED 狀態上，靠資料庫的單列原子性擋下並發離場
	result := database.DB.Model(&models.ParkingSession{}).
		Where("id = ? AND status = ?", sessionID, models.StatusParked).
		Updates(map[string]interface{}{
			"status":       models.StatusExited,
			"exit_time":    exitTime,
			"total_amount": totalAmount,
			"active_key":   nil,
		})
	if result.Error != nil {
		logrus.Errorf("Failed to close session %d: %v", sessionID, result.Error)
		return nil, fmt.Errorf("failed to close session %d: %w", sessionID, result.Error)
	}
	if result.RowsAffected == 0 {
		// 另一個離場請求先完成了
		return nil, ErrAlreadyExited
	}

	session.Status = models.StatusExited
	session.ExitTime = &exitTime
	session.TotalAmount = &totalAmount
	session.ActiveKey = nil

	logrus.Infof("Exit recorded: session %d, %s parked %.0f minutes, charged %d paise",
		session.ID, session.VehicleNumber, exitTime.Sub(session.EntryTime).Minutes(), totalAmount)
	return &session, nil
}

// GetAllSessions 查詢所有停車紀錄（含已離場）
func GetAllSessions() ([]models.ParkingSession, error) {
	sessions := make([]models.ParkingSession, 0)
	if err := database.DB.Find(&sessions).Error; err != nil {
		logrus.Errorf("Failed to fetch parking sessions: %v", err)
		return nil, fmt.Errorf("failed to fetch parking sessions: %w", err)
	}
	return sessions, nil
}

// CheckOverstayedSessions 掃描停超過 24 小時仍未離場的車輛，僅記錄不改狀態
func CheckOverstayedSessions() error {
	cutoff := time.Now().UTC().Add(-24 * time.Hour)
	var sessions []models.ParkingSession
	if err := database.DB.
		Where("status = ? AND entry_time < ?", models.StatusParked, cutoff).
		Find(&sessions).Error; err != nil {
		return fmt.Errorf("failed to query overstayed sessions: %w", err)
	}

	for _, s := range sessions {
		logrus.Warnf("Overstayed session %d: %s at slot %s, parked since %s",
			s.ID, s.VehicleNumber, s.SlotNumber, s.EntryTime.Format(time.RFC3339))
	}
	return nil
}
