package handlers

import (
	"net/http"
	"os"
	"smartpark/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

// 停車場預設容量，可用 PARKING_CAPACITY 覆寫
const defaultCapacity = 50

// GetStats 儀表板統計
func GetStats(c *gin.Context) {
	capacity := int64(defaultCapacity)
	if v := os.Getenv("PARKING_CAPACITY"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			capacity = parsed
		}
	}

	stats, err := services.GetDashboardStats(capacity)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}
