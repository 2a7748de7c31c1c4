package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InvalidateOnWrite calls invalidate after every successful request that is
// not a read.
func InvalidateOnWrite(invalidate func(ctx context.Context)) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}
		if s := c.Writer.Status(); s >= 200 && s < 300 {
			invalidate(c.Request.Context())
		}
	}
}
