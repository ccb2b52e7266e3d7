package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// JWTSecret 簽發與驗證 token 共用的密鑰
var JWTSecret []byte

// InitJWTSecret 從環境變數載入 JWT 密鑰
func InitJWTSecret() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "smartpark-dev-secret"
		logrus.Warn("JWT_SECRET not set, using insecure default")
	}
	JWTSecret = []byte(secret)
}

// GenerateToken 為登入成功的使用者簽發 24 小時效期的 HS256 token
func GenerateToken(userID, username string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret)
}
