package handlers

import (
	"errors"
	"net/http"
	"smartpark/services"
	"smartpark/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Login 登入並簽發 token
func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Username and password required")
		return
	}
	if input.Username == "" || input.Password == "" {
		ErrorResponse(c, http.StatusBadRequest, "Username and password required")
		return
	}

	user, err := services.LoginUser(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, "Failed to login")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username)
	if err != nil {
		logrus.Errorf("Failed to generate token for user %s: %v", user.Username, err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"token":    token,
	})
}
