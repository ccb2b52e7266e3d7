package models

import "time"

// 停車狀態機：PARKED -> EXITED，單向且不可逆
const (
	StatusParked = "PARKED"
	StatusExited = "EXITED"
)

// ParkingSession 單次停車紀錄。vehicle_number 僅為字串關聯，不設外鍵（支援 walk-in 車輛）
type ParkingSession struct {
	ID            int        `json:"id" gorm:"primaryKey;autoIncrement"`
	VehicleNumber string     `json:"vehicleNumber" gorm:"type:varchar(20);not null;index;column:vehicle_number"`
	SlotNumber    string     `json:"slotNumber" gorm:"type:varchar(10);not null;column:slot_number"`
	EntryTime     time.Time  `json:"entryTime" gorm:"column:entry_time;not null"`
	ExitTime      *time.Time `json:"exitTime" gorm:"column:exit_time"`
	Status        string     `json:"status" gorm:"type:varchar(10);not null;column:status"`
	EntryImageURL *string    `json:"entryImageUrl" gorm:"type:text;column:entry_image_url"`
	TotalAmount   *int64     `json:"totalAmount" gorm:"column:total_amount"` // 以 paise（最小幣值單位）儲存

	// active_key 在 PARKED 期間等於車牌，離場時設回 NULL。
	// 唯一索引保證同一車牌同時最多一筆 PARKED（MySQL 沒有 partial unique index，用這招）
	ActiveKey *string `json:"-" gorm:"type:varchar(20);uniqueIndex;column:active_key"`
}

// TableName 指定表名
func (ParkingSession) TableName() string {
	return "parking_sessions"
}
