package common

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// GuestUserID 未帶身分標頭時使用的共用訪客 ID
	GuestUserID = "guest"

	headerRequestID = "X-Request-ID"
	headerUserID    = "X-User-ID"
)

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// RequestID 取得或產生請求 ID，並回寫到響應標頭
func RequestID(c *gin.Context) string {
	requestID := c.GetHeader(headerRequestID)
	if requestID == "" {
		requestID = c.Writer.Header().Get(headerRequestID)
	}
	if requestID == "" {
		requestID = GenerateUUID()
		c.Header(headerRequestID, requestID)
	}
	return requestID
}

// UserID 取得呼叫者身分，沒有時視為訪客
func UserID(c *gin.Context) string {
	id := strings.TrimSpace(c.GetHeader(headerUserID))
	if id == "" {
		return GuestUserID
	}
	return id
}
