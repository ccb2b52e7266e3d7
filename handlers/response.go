package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorBody 錯誤回應格式：{message, field}，field 只在欄位驗證失敗時出現
type ErrorBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ErrorResponse 返回失敗的回應
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Message: message})
}

// BindingErrorResponse 將 binding 驗證錯誤轉成 400 {message, field}
func BindingErrorResponse(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		c.JSON(http.StatusBadRequest, ErrorBody{
			Message: validationMessage(fe),
			Field:   fieldName(fe),
		})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorBody{Message: "Invalid request body"})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fieldName(fe) + " is required"
	case "oneof":
		return fieldName(fe) + " must be one of: " + fe.Param()
	default:
		return fieldName(fe) + " is invalid"
	}
}

// fieldName 將結構欄位名轉成 JSON 欄位名（小寫開頭）
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return ""
	}
	return strings.ToLower(name[:1]) + name[1:]
}
