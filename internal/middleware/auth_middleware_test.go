package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func adminTestRouter(apiKey string) *gin.Engine {
	router := gin.New()
	auth := NewAuthMiddleware(apiKey)
	router.GET("/admin/ping", auth.AdminKeyRequired(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestAdminKeyRequired(t *testing.T) {
	router := adminTestRouter("secret-key")

	tests := []struct {
		name string
		key  string
		want int
	}{
		{"valid key", "secret-key", http.StatusNoContent},
		{"wrong key", "not-the-key", http.StatusUnauthorized},
		{"missing key", "", http.StatusUnauthorized},
		{"key with extra suffix", "secret-key2", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
			if tt.key != "" {
				req.Header.Set(AdminKeyHeader, tt.key)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), "ACC_003")
			}
		})
	}
}
