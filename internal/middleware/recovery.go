package middleware

import (
	"github.com/gin-gonic/gin"

	"salesreport-srv/pkg/log"
	"salesreport-srv/pkg/response"
)

// Recovery recovers from handler panics and returns a clean 500.
func Recovery(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered: %v | Method: %s | Path: %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err)
				c.Abort()
			}
		}()
		c.Next()
	}
}
