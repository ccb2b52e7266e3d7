package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"smartpark/database"
	"smartpark/models"
	"smartpark/services"
	"smartpark/utils"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	// in-memory DB 綁定在單一連線上，連線池必須鎖在一條
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Vehicle{}, &models.ParkingSession{}))
	database.DB = db
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	r := gin.New()
	api := r.Group("/api")
	api.POST("/login", Login)
	api.GET("/vehicles", GetVehicles)
	api.POST("/vehicles", RegisterVehicle)
	api.PATCH("/vehicles/:id", UpdateVehicle)
	api.DELETE("/vehicles/:id", DeleteVehicle)
	api.GET("/parking/sessions", GetParkingSessions)
	api.POST("/parking/entry", RecordEntry)
	api.POST("/parking/exit/:id", RecordExit)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterVehicleValidation(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, "POST", "/api/vehicles", gin.H{"ownerName": "Asha Rao"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["message"])
	assert.Equal(t, "vehicleNumber", body["field"])

	// 車輛類型只接受 Car / Bike
	w = doJSON(t, r, "POST", "/api/vehicles", gin.H{
		"ownerName": "Asha Rao", "vehicleNumber": "KA-05-MN-4321",
		"vehicleType": "Truck", "contactNumber": "9876543210",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "vehicleType", body["field"])
}

func TestVehicleEndpoints(t *testing.T) {
	r := setupRouter(t)

	payload := gin.H{
		"ownerName": "Asha Rao", "vehicleNumber": "KA-05-MN-4321",
		"vehicleType": "Car", "contactNumber": "9876543210",
	}
	w := doJSON(t, r, "POST", "/api/vehicles", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "KA-05-MN-4321", created.VehicleNumber)

	// 重複車牌
	w = doJSON(t, r, "POST", "/api/vehicles", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 清單裡恰好出現一次
	w = doJSON(t, r, "GET", "/api/vehicles", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var list []models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Asha Rao", list[0].OwnerName)

	// 局部更新
	w = doJSON(t, r, "PATCH", fmt.Sprintf("/api/vehicles/%d", created.ID), gin.H{"ownerName": "Asha R"})
	assert.Equal(t, http.StatusOK, w.Code)
	var updated models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Asha R", updated.OwnerName)
	assert.Equal(t, "KA-05-MN-4321", updated.VehicleNumber)

	w = doJSON(t, r, "PATCH", "/api/vehicles/abc", gin.H{"ownerName": "X"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "PATCH", "/api/vehicles/999", gin.H{"ownerName": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 刪除
	w = doJSON(t, r, "DELETE", fmt.Sprintf("/api/vehicles/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/api/vehicles/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestParkingEndpoints(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, "POST", "/api/parking/entry", gin.H{"vehicleNumber": "KA-01-AB-1234", "slotNumber": "A-12"})
	assert.Equal(t, http.StatusCreated, w.Code)

	var session models.ParkingSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, models.StatusParked, session.Status)
	assert.Nil(t, session.ExitTime)

	// 在場車牌不得再進場
	w = doJSON(t, r, "POST", "/api/parking/entry", gin.H{"vehicleNumber": "KA-01-AB-1234", "slotNumber": "B-01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 缺少欄位
	w = doJSON(t, r, "POST", "/api/parking/entry", gin.H{"vehicleNumber": "KA-02-CD-5678"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "slotNumber", body["field"])

	// 離場
	w = doJSON(t, r, "POST", fmt.Sprintf("/api/parking/exit/%d", session.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var closed models.ParkingSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &closed))
	assert.Equal(t, models.StatusExited, closed.Status)
	require.NotNil(t, closed.ExitTime)
	require.NotNil(t, closed.TotalAmount)
	assert.Equal(t, int64(2000), *closed.TotalAmount)

	// 重複離場
	w = doJSON(t, r, "POST", fmt.Sprintf("/api/parking/exit/%d", session.ID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 無效與不存在的 id
	w = doJSON(t, r, "POST", "/api/parking/exit/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/api/parking/exit/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 清單包含兩種狀態
	w = doJSON(t, r, "GET", "/api/parking/sessions", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var sessions []models.ParkingSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sessions))
	assert.Len(t, sessions, 1)
}

func TestLoginEndpoint(t *testing.T) {
	r := setupRouter(t)
	utils.InitJWTSecret()
	require.NoError(t, services.SeedUser("admin", "parking123"))

	w := doJSON(t, r, "POST", "/api/login", gin.H{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/api/login", gin.H{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, "POST", "/api/login", gin.H{"username": "admin", "password": "parking123"})
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "admin", body["username"])
	assert.NotEmpty(t, body["id"])
	assert.NotEmpty(t, body["token"])
}
