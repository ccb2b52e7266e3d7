package handlers

import (
	"errors"
	"net/http"
	"smartpark/models"
	"smartpark/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetVehicles 查詢所有車輛
func GetVehicles(c *gin.Context) {
	vehicles, err := services.GetAllVehicles()
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch vehicles")
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// RegisterVehicle 登記車輛
func RegisterVehicle(c *gin.Context) {
	var input struct {
		OwnerName     string  `json:"ownerName" binding:"required"`
		VehicleNumber string  `json:"vehicleNumber" binding:"required"`
		VehicleType   string  `json:"vehicleType" binding:"required,oneof=Car Bike"`
		ContactNumber string  `json:"contactNumber" binding:"required"`
		ImageURL      *string `json:"imageUrl"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		BindingErrorResponse(c, err)
		return
	}

	vehicle := models.Vehicle{
		OwnerName:     input.OwnerName,
		VehicleNumber: input.VehicleNumber,
		VehicleType:   input.VehicleType,
		ContactNumber: input.ContactNumber,
		ImageURL:      input.ImageURL,
	}

	if err := services.RegisterVehicle(&vehicle); err != nil {
		if errors.Is(err, services.ErrDuplicateVehicle) {
			ErrorResponse(c, http.StatusBadRequest, "Vehicle number already registered")
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, "Failed to register vehicle")
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// UpdateVehicle 局部更新車輛資料（車牌不可改）
func UpdateVehicle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	var input struct {
		OwnerName     *string `json:"ownerName"`
		VehicleType   *string `json:"vehicleType" binding:"omitempty,oneof=Car Bike"`
		ContactNumber *string `json:"contactNumber"`
		ImageURL      *string `json:"imageUrl"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		BindingErrorResponse(c, err)
		return
	}

	updates := make(map[string]interface{})
	if input.OwnerName != nil {
		updates["owner_name"] = *input.OwnerName
	}
	if input.VehicleType != nil {
		updates["vehicle_type"] = *input.VehicleType
	}
	if input.ContactNumber != nil {
		updates["contact_number"] = *input.ContactNumber
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}

	vehicle, err := services.UpdateVehicle(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrVehicleNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Vehicle not found")
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, "Failed to update vehicle")
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle 刪除車輛
func DeleteVehicle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	if err := services.DeleteVehicle(id); err != nil {
		if errors.Is(err, services.ErrVehicleNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Vehicle not found")
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, "Failed to delete vehicle")
		return
	}

	c.Status(http.StatusNoContent)
}
