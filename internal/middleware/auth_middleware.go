package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baris/okulport/internal/app/models/dto"
)

// AdminKeyHeader carries the admin API key on admin endpoints
const AdminKeyHeader = "X-Admin-Key"

// AuthMiddleware guards the admin endpoint group with a static API key.
type AuthMiddleware struct {
	apiKey string
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(apiKey string) *AuthMiddleware {
	return &AuthMiddleware{
		apiKey: apiKey,
	}
}

// AdminKeyRequired rejects requests without a matching admin API key
func (m *AuthMiddleware) AdminKeyRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(AdminKeyHeader)
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(m.apiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Missing or invalid admin key")))
			return
		}
		c.Next()
	}
}
