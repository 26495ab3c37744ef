package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/callpulse/callpulse/internal/domain/dto"
	"github.com/callpulse/callpulse/internal/logger"
)

// ErrorHandler converts errors attached to the gin context into a
// standardized 500 JSON response. Handlers that already wrote a status
// are left alone.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("request error")

	if !c.Writer.Written() {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
	}
}

// AbortWithError stops the request with the given status and a
// standardized error body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
