package handler

import (
	"github.com/TTJ-s/qr-annujoom/internal/i18n"
	"github.com/gin-gonic/gin"
)

// SuccessResponse writes the uniform success envelope.
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes the uniform failure envelope.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// LocalizedErrorResponse resolves the message to the caller's language.
func LocalizedErrorResponse(c *gin.Context, statusCode int, message i18n.LocalizedText, lang i18n.Language) {
	ErrorResponse(c, statusCode, i18n.Resolve(message, lang))
}
