package main

import (
	"log"
	"os"
	"smartpark/database"
	"smartpark/logger"
	"smartpark/models"
	"smartpark/routes"
	"smartpark/services"
	"smartpark/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {
	// 載入 .env 檔案
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using default environment variables: %v", err)
	}

	// 初始化日誌輸出
	logger.Setup()

	// 初始化 JWTSecret
	utils.InitJWTSecret()

	// 初始化資料庫
	database.InitDB()

	// 執行資料庫遷移
	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.ParkingSession{},
	); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
	log.Println("Database migration completed")

	// 確保預設管理員存在
	ensureAdminExists()

	// 設置 Gin 模式
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "" {
		ginMode = gin.ReleaseMode
	}
	gin.SetMode(ginMode)
	log.Printf("Gin mode set to %s", ginMode)

	// 初始化 Gin 路由器
	r := gin.Default()

	// 創建一個 API 路由組
	api := r.Group("/api")
	{
		routes.Path(api)
	}

	// 啟動定時任務
	c := cron.New()

	// 檢查滯留車輛定時任務（每小時執行一次）
	_, err := c.AddFunc("0 * * * *", func() {
		log.Println("Checking for overstayed sessions...")
		if err := services.CheckOverstayedSessions(); err != nil {
			log.Printf("Failed to check overstayed sessions: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule overstay check cron job: %v", err)
	}

	c.Start()
	log.Println("Cron jobs started")

	// 啟動伺服器
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// ensureAdminExists 依環境變數建立預設管理員帳號
func ensureAdminExists() {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	if err := services.SeedUser(username, password); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
}
