package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/guttosm/catering-service/internal/domain/dto"
	"github.com/guttosm/catering-service/internal/i18n"
	"github.com/guttosm/catering-service/internal/logger"
)

// ErrorHandler answers for errors a handler pushed with c.Error without writing a response.
// Errors from the request deadline become a 504; everything else is a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status, code, key := http.StatusInternalServerError, dto.ErrCodeInternal, i18n.ErrKeyInternalError
		level := zerolog.ErrorLevel
		switch {
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, http.ErrHandlerTimeout):
			status, code, key = http.StatusGatewayTimeout, dto.ErrCodeTimeout, i18n.ErrKeyTimeout
			level = zerolog.WarnLevel
		case errors.Is(err, context.Canceled):
			level = zerolog.InfoLevel
		}

		logger.FromContext(c.Request.Context()).WithLevel(level).
			Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
			c.JSON(status, dto.NewError(code, message).WithRequestID(GetRequestID(c)))
		}
	}
}
