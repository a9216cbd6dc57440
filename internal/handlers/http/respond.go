package http

import (
	"github.com/gin-gonic/gin"

	apperrors "metahub/pkg/errors"
)

// failWith records the error on the context and stops the chain. The
// error middleware translates it into the HTTP response.
func failWith(c *gin.Context, err *apperrors.AppError) {
	_ = c.Error(err)
	c.Abort()
}
