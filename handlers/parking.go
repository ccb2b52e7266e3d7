package handlers

import (
	"errors"
	"net/http"
	"smartpark/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetParkingSessions 查詢所有停車紀錄
func GetParkingSessions(c *gin.Context) {
	sessions, err := services.GetAllSessions()
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch parking sessions")
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// RecordEntry 進場開單
func RecordEntry(c *gin.Context) {
	var input struct {
		VehicleNumber string  `json:"vehicleNumber" binding:"required"`
		SlotNumber    string  `json:"slotNumber" binding:"required"`
		EntryImageURL *string `json:"entryImageUrl"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		BindingErrorResponse(c, err)
		return
	}

	session, err := services.RecordEntry(input.VehicleNumber, input.SlotNumber, input.EntryImageURL)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyParked) {
			ErrorResponse(c, http.StatusBadRequest, "Vehicle already parked")
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, "Failed to record entry")
		return
	}

	c.JSON(http.StatusCreated, session)
}

// RecordExit 離場結算
func RecordExit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid session id")
		return
	}

	session, err := services.RecordExit(id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionNotFound):
			ErrorResponse(c, http.StatusNotFound, "Session not found")
		case errors.Is(err, services.ErrAlreadyExited):
			ErrorResponse(c, http.StatusBadRequest, "Session already exited")
		default:
			ErrorResponse(c, http.StatusInternalServerError, "Failed to record exit")
		}
		return
	}

	c.JSON(http.StatusOK, session)
}
