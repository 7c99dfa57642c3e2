package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		handler        gin.HandlerFunc
		expectedStatus int
		expectedBody   string
		mustContain    []string
	}{
		{
			name: "unmapped error is a 500",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("load package items: connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			mustContain:    []string{"internal_error", "An unexpected error occurred"},
		},
		{
			name: "reprice past the deadline is a 504",
			handler: func(c *gin.Context) {
				_ = c.Error(fmt.Errorf("reprice package: %w", context.DeadlineExceeded))
			},
			expectedStatus: http.StatusGatewayTimeout,
			mustContain:    []string{"timeout", "Request timeout"},
		},
		{
			name: "written response is kept",
			handler: func(c *gin.Context) {
				c.JSON(http.StatusConflict, gin.H{"error": "conflict"})
				_ = c.Error(errors.New("stale revision"))
			},
			expectedStatus: http.StatusConflict,
			mustContain:    []string{"conflict"},
		},
		{
			name: "does nothing when no errors",
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), ErrorHandler())
			router.PUT("/api/packages/:id", tt.handler)

			req := httptest.NewRequest(http.MethodPut, "/api/packages/65a1f0c2e4b0a1b2c3d4e5f6", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
			for _, substr := range tt.mustContain {
				assert.Contains(t, w.Body.String(), substr)
			}
			if tt.expectedStatus >= 500 {
				assert.Contains(t, w.Body.String(), w.Header().Get(RequestIDHeader))
			}
		})
	}
}
