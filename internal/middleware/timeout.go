package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/catering-service/internal/domain/dto"
	"github.com/guttosm/catering-service/internal/i18n"
)

// TimeoutConfig holds configuration for the timeout middleware.
type TimeoutConfig struct {
	// Timeout bounds the handler, including the package transaction it runs.
	Timeout time.Duration
	// ErrorMessage is used when no translator is loaded.
	ErrorMessage string
}

// DefaultTimeoutConfig returns sensible defaults for the timeout middleware.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:      30 * time.Second,
		ErrorMessage: "Request timeout",
	}
}

// Timeout runs the rest of the chain with a deadline on the request context. The handler
// writes into a buffer that is sent once it returns. When the deadline passes first the
// client gets a 504 and the buffered response is dropped. The middleware waits for the
// handler either way, and a handler panic is re-raised for Recovery.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		dst := c.Writer
		tw := newTimeoutWriter(dst)
		c.Writer = tw

		var panicked any
		done := make(chan struct{})
		go func() {
			defer func() {
				panicked = recover()
				close(done)
			}()
			c.Next()
		}()

		timedOut := false
		select {
		case <-done:
		case <-ctx.Done():
			tw.expire()
			timedOut = true
			writeTimeout(c, dst, cfg)
			<-done
		}

		c.Writer = dst
		if panicked != nil {
			panic(panicked)
		}
		if timedOut {
			c.Abort()
			return
		}
		tw.flushTo(dst)
	}
}

// TimeoutWithDuration is a convenience function to create timeout middleware with a specific duration.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}

func writeTimeout(c *gin.Context, dst gin.ResponseWriter, cfg TimeoutConfig) {
	message := cfg.ErrorMessage
	if translator := i18n.GetTranslator(); translator != nil {
		message = translator.Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
	}
	body, err := json.Marshal(dto.NewError(dto.ErrCodeTimeout, message).WithRequestID(GetRequestID(c)))
	if err != nil {
		body = []byte(`{"error":"timeout"}`)
	}

	dst.Header().Set("Content-Type", "application/json; charset=utf-8")
	dst.WriteHeader(http.StatusGatewayTimeout)
	_, _ = dst.Write(body)
	dst.Flush()
}

// timeoutWriter buffers a handler's response until the Timeout middleware decides to send it.
type timeoutWriter struct {
	gin.ResponseWriter

	mu      sync.Mutex
	header  http.Header
	body    bytes.Buffer
	status  int
	written bool
	expired bool
}

func newTimeoutWriter(dst gin.ResponseWriter) *timeoutWriter {
	return &timeoutWriter{ResponseWriter: dst, header: make(http.Header), status: http.StatusOK}
}

func (w *timeoutWriter) Header() http.Header {
	return w.header
}

func (w *timeoutWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.expired {
		return 0, http.ErrHandlerTimeout
	}
	w.written = true
	return w.body.Write(b)
}

func (w *timeoutWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

func (w *timeoutWriter) WriteHeader(code int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.expired || w.written {
		return
	}
	w.status = code
}

func (w *timeoutWriter) WriteHeaderNow() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.written = true
}

func (w *timeoutWriter) Written() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}

func (w *timeoutWriter) Status() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

func (w *timeoutWriter) Size() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.written {
		return -1
	}
	return w.body.Len()
}

// Flush is a no-op; the response is held until the handler returns.
func (w *timeoutWriter) Flush() {}

func (w *timeoutWriter) expire() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.expired = true
}

func (w *timeoutWriter) flushTo(dst gin.ResponseWriter) {
	w.mu.Lock()
	defer w.mu.Unlock()

	h := dst.Header()
	for k, v := range w.header {
		h[k] = v
	}
	dst.WriteHeader(w.status)
	if w.body.Len() > 0 {
		_, _ = dst.Write(w.body.Bytes())
		return
	}
	dst.WriteHeaderNow()
}
