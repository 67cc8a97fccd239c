package utils

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Envelope is the uniform response wrapper: a "status" of "success" or "fail",
// the payload under "data", and an optional human-readable "message".
type Envelope struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// JSONSuccess writes a success envelope with the payload under the given key.
func JSONSuccess(c *gin.Context, httpStatus int, key string, payload any) {
	c.JSON(httpStatus, Envelope{
		Status: "success",
		Data:   map[string]any{key: payload},
	})
}

// JSONFail writes a fail envelope with a human-readable message.
func JSONFail(c *gin.Context, httpStatus int, message string) {
	GetLogger().Warn("request failed", zap.Int("status", httpStatus), zap.String("message", message))
	c.JSON(httpStatus, Envelope{
		Status:  "fail",
		Message: message,
	})
}
