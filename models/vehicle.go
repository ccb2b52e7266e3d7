package models

import "time"

// 車輛類型
const (
	VehicleTypeCar  = "Car"
	VehicleTypeBike = "Bike"
)

// Vehicle 車輛登記表：車牌為業務上的唯一識別，walk-in 車輛不一定有此紀錄
type Vehicle struct {
	ID            int       `json:"id" gorm:"primaryKey;autoIncrement"`
	OwnerName     string    `json:"ownerName" gorm:"type:varchar(100);not null;column:owner_name"`
	VehicleNumber string    `json:"vehicleNumber" gorm:"type:varchar(20);not null;uniqueIndex;column:vehicle_number"`
	VehicleType   string    `json:"vehicleType" gorm:"type:varchar(10);not null;column:vehicle_type"`
	ContactNumber string    `json:"contactNumber" gorm:"type:varchar(20);not null;column:contact_number"`
	ImageURL      *string   `json:"imageUrl" gorm:"type:text;column:image_url"`
	CreatedAt     time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
}

// TableName 指定表名
func (Vehicle) TableName() string {
	return "vehicles"
}
