package routes

import (
	"errors"
	"net/http"
	"smartpark/handlers"
	"smartpark/utils"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware 驗證 JWT token，並將 user_id 和 username 放進 context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Authorization header is required",
			})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Authorization header must be in the format 'Bearer <token>'",
			})
			c.Abort()
			return
		}

		// 明確要求檢查 exp 字段
		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return utils.JWTSecret, nil
		}, jwt.WithExpirationRequired())

		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Token has expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			}
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token claims"})
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid user_id in token"})
			c.Abort()
			return
		}
		username, _ := claims["username"].(string)

		c.Set("user_id", userID)
		c.Set("username", username)
		c.Next()
	}
}

func Path(router *gin.RouterGroup) {
	// 測試路由
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 登入路由：不需要 token 驗證
	router.POST("/login", handlers.Login)

	// 車輛路由
	vehicles := router.Group("/vehicles")
	{
		vehicles.GET("", handlers.GetVehicles)          // 查詢所有車輛
		vehicles.POST("", handlers.RegisterVehicle)     // 登記車輛
		vehicles.PATCH("/:id", handlers.UpdateVehicle)  // 局部更新車輛
		vehicles.DELETE("/:id", handlers.DeleteVehicle) // 刪除車輛
	}

	// 停車路由
	parking := router.Group("/parking")
	{
		parking.GET("/sessions", handlers.GetParkingSessions) // 查詢所有停車紀錄
		parking.POST("/entry", handlers.RecordEntry)          // 進場開單
		parking.POST("/exit/:id", handlers.RecordExit)        // 離場結算
	}

	// 儀表板統計：需要 token 驗證
	stats := router.Group("/stats")
	stats.Use(AuthMiddleware())
	{
		stats.GET("", handlers.GetStats)
	}
}
