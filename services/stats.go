package services

import (
	"fmt"
	"math"
	"smartpark/database"
	"smartpark/models"
	"time"

	"github.com/sirupsen/logrus"
)

// DashboardStats 儀表板統計值，todayRevenue 同樣以 paise 計
type DashboardStats struct {
	TotalVehicles  int64 `json:"totalVehicles"`
	ParkedCount    int64 `json:"parkedCount"`
	Capacity       int64 `json:"capacity"`
	AvailableSlots int64 `json:"availableSlots"`
	UtilizationPct int64 `json:"utilizationPct"`
	TodayRevenue   int64 `json:"todayRevenue"`
}

// GetDashboardStats 彙整登記車輛數、在場數與今日營收
func GetDashboardStats(capacity int64) (*DashboardStats, error) {
	var totalVehicles int64
	if err := database.DB.Model(&models.Vehicle{}).Count(&totalVehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to count vehicles: %w", err)
	}

	var parkedCount int64
	if err := database.DB.Model(&models.ParkingSession{}).
		Where("status = ?", models.StatusParked).
		Count(&parkedCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count parked sessions: %w", err)
	}

	// 今日營收：從 UTC 零點起算的已離場金額加總
	now := time.Now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	var todayRevenue int64
	if err := database.DB.Model(&models.ParkingSession{}).
		Where("status = ? AND exit_time >= ?", models.StatusExited, startOfDay).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&todayRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to calculate today revenue: %w", err)
	}

	available := capacity - parkedCount
	if available < 0 {
		available = 0
	}
	var utilization int64
	if capacity > 0 {
		utilization = int64(math.Round(float64(parkedCount) / float64(capacity) * 100))
	}

	logrus.Infof("Dashboard stats: %d vehicles, %d parked, %d paise revenue today",
		totalVehicles, parkedCount, todayRevenue)

	return &DashboardStats{
		TotalVehicles:  totalVehicles,
		ParkedCount:    parkedCount,
		Capacity:       capacity,
		AvailableSlots: available,
		UtilizationPct: utilization,
		TodayRevenue:   todayRevenue,
	}, nil
}
