package response

import (
	"github.com/gin-gonic/gin"

	"rentalhub/internal/pkg/apperr"
)

// Success writes the payload as the response body, without an envelope.
func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// Abort is Error for middleware that must stop the chain.
func Abort(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"error": message})
}

// Fail renders a service error by kind. Internal errors are attached to the
// context for the error logger and never leak their detail.
func Fail(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		_ = c.Error(err)
	}
	Error(c, kind.Status(), apperr.MessageOf(err))
}
