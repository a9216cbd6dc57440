package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "metahub/pkg/errors"
)

// ErrorHandlerMiddleware turns errors recorded on the context into
// HTTP responses. Handlers never write error bodies themselves; they
// attach a coded AppError and this middleware maps it to a status.
func ErrorHandlerMiddleware(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		if appErr := apperrors.From(err); appErr != nil {
			if appErr.Status >= http.StatusInternalServerError {
				logger.Errorw("request failed",
					"code", appErr.Code,
					"error", appErr.Error(),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)
			} else {
				logger.Debugw("request rejected",
					"code", appErr.Code,
					"message", appErr.Message,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)
			}

			c.JSON(appErr.Status, gin.H{
				"error": appErr.Message,
				"code":  string(appErr.Code),
			})
			return
		}

		logger.Errorw("unclassified error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "internal server error",
			"code":  string(apperrors.CodeInternal),
		})
	}
}

// RecoveryMiddleware recovers from panics and answers with a 500.
func RecoveryMiddleware(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Errorw("panic recovered",
					"error", r,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
					"code":  string(apperrors.CodeInternal),
				})
			}
		}()

		c.Next()
	}
}
