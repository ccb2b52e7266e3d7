package services

import (
	"fmt"
	"math"
	"time"
)

// 計費規則：每 30 分鐘為一個計費區塊，每區塊 20 元，金額以 paise（最小幣值單位）儲存
const (
	BlockMinutes      = 30
	RatePerBlockPaise = 20 * 100
)

// ComputeFee 依進出場時間計算停車費，不足一分鐘以一分鐘計，不足一個區塊以一個區塊計。
// 進出場時間相同時費用為 0，沒有低消。
func ComputeFee(entryTime, exitTime time.Time) (int64, error) {
	if exitTime.Before(entryTime) {
		return 0, fmt.Errorf("exit_time %v cannot be earlier than entry_time %v", exitTime, entryTime)
	}

	durationMinutes := math.Ceil(exitTime.Sub(entryTime).Minutes())
	blocks := math.Ceil(durationMinutes / BlockMinutes)

	return int64(blocks) * RatePerBlockPaise, nil
}
