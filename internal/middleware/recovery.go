package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/catering-service/internal/domain/dto"
	"github.com/guttosm/catering-service/internal/i18n"
	"github.com/guttosm/catering-service/internal/logger"
)

// Recovery turns a handler panic into a translated 500 carrying the request ID.
// The panic is logged through the request logger, which already holds the request ID and actor.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.FromContext(c.Request.Context()).Error().
					Interface("panic", err).
					Str("method", c.Request.Method).
					Str("path", c.FullPath()).
					Str("stack", string(debug.Stack())).
					Msg("PANIC recovered")

				if c.Writer.Written() {
					c.Abort()
					return
				}
				message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewError(dto.ErrCodeInternal, message).WithRequestID(GetRequestID(c)))
			}
		}()
		c.Next()
	}
}
