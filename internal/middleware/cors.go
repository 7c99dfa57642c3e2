package middleware

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DefaultCORSOrigins are the local dashboard origins allowed when none are configured.
var DefaultCORSOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

// CORSConfig allows the caterer dashboard and buyer app to call the API with bearer tokens,
// development actor headers and idempotency keys.
func CORSConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = DefaultCORSOrigins
	}
	return cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodOptions, http.MethodPatch,
		},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language",
			"Authorization", "accept", "Cache-Control", "X-Requested-With",
			IdempotencyKeyHeader, RequestIDHeader, ActorIDHeader, ActorTypeHeader,
		},
		ExposeHeaders:    []string{RequestIDHeader, IdempotencyReplayedHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}
}

// CORS returns the gin-contrib/cors middleware for the given origins.
func CORS(origins []string) gin.HandlerFunc {
	return cors.New(CORSConfig(origins))
}
