package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key (RFC standard).
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from a stored replay.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long a replay is kept.
	IdempotencyKeyTTL = 5 * time.Minute
)

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Store   ReplayStore
	TTL     time.Duration
	Enabled bool
}

// DefaultIdempotencyConfig keeps replays in process memory.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Store:   NewMemoryReplayStore(IdempotencyKeyTTL),
		TTL:     IdempotencyKeyTTL,
		Enabled: true,
	}
}

// Idempotency replays the stored 2xx response when a write is retried with the same
// Idempotency-Key, actor, route and body. Keys are scoped to the calling actor, so it
// must run after actor authentication.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Store == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		if !isReplayableMethod(c.Request.Method) {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		scoped := replayKey(key, actorScope(c), c.Request)
		ctx := c.Request.Context()

		if replay, ok := cfg.Store.Get(ctx, scoped); ok {
			for k, v := range replay.Headers {
				c.Header(k, v)
			}
			c.Header(IdempotencyReplayedHeader, "true")
			if len(replay.Body) == 0 {
				c.AbortWithStatus(replay.StatusCode)
				return
			}
			c.Data(replay.StatusCode, "application/json", replay.Body)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
		}
		c.Writer = writer

		c.Next()

		if writer.statusCode >= 200 && writer.statusCode < 300 {
			cfg.Store.Set(ctx, scoped, &Replay{
				StatusCode: writer.statusCode,
				Headers:    replayHeaders(writer.Header()),
				Body:       writer.body.Bytes(),
			})
		}
	}
}

func isReplayableMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// replayKey hashes the client key with the actor, method, path and body.
func replayKey(idempotencyKey, scope string, req *http.Request) string {
	hasher := sha256.New()
	for _, part := range []string{idempotencyKey, scope, req.Method, req.URL.Path} {
		hasher.Write([]byte(part))
		hasher.Write([]byte{0})
	}

	if req.Body != nil {
		bodyBytes, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		hasher.Write(bodyBytes)
	}

	return hex.EncodeToString(hasher.Sum(nil))
}

func actorScope(c *gin.Context) string {
	if actor, ok := GetActor(c); ok {
		return string(actor.Type) + ":" + actor.ID.Hex()
	}
	return "anonymous"
}

// Request-scoped headers are not replayed.
var skippedReplayHeaders = map[string]struct{}{
	http.CanonicalHeaderKey(RequestIDHeader): {},
	"Content-Length":                         {},
	"Date":                                   {},
}

func replayHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		if _, skip := skippedReplayHeaders[k]; skip || len(v) == 0 {
			continue
		}
		out[k] = v[0]
	}
	return out
}

// responseWriter captures the response body and status for replay.
type responseWriter struct {
	gin.ResponseWriter
	body       *bytes.Buffer
	statusCode int
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
