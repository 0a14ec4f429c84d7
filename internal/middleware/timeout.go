package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/laundry-marketplace/internal/httperr"
)

// Timeout puts a deadline on the request context. Handlers and queries that
// honour the context stop once it expires. Failed queries are answered with
// 503 by httperr.Handle; if the handler wrote nothing the 503 is sent here.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			httperr.Abort(c, http.StatusServiceUnavailable, "request_timeout")
		}
	}
}
