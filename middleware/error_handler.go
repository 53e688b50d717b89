package middleware

import (
	"CityGuide/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandlerMiddleware renders the last error attached with c.Error.
// CustomErrors keep their status; anything else becomes a logged 500.
func ErrorHandlerMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		if customErr, ok := utils.AsCustomError(err); ok {
			if customErr.StatusCode >= 500 {
				log.Error("request failed",
					zap.String("path", c.FullPath()),
					zap.Int("status", customErr.StatusCode),
					zap.Error(err))
			}
			utils.CustomErrorResponse(c, customErr)
			return
		}

		log.Error("unhandled error",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		utils.InternalErrorResponse(c)
	}
}
