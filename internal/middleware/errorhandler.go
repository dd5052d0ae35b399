package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/finpulse/finpulse/internal/domain/dto"
	"github.com/finpulse/finpulse/internal/logger"
)

// ErrorHandler is a Gin middleware that turns errors attached to the context
// by downstream handlers into a standardized JSON error response.
//
// Behavior:
//   - Runs the rest of the chain first.
//   - If handlers attached errors via c.Error and no body was written yet,
//     responds 500 with dto.NewErrorResponse.
//   - Always logs the last attached error.
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
