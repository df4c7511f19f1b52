package middleware

import (
	"github.com/gin-gonic/gin"

	"quote-service/pkg/response"
)

// RateLimit applies the process-wide token bucket. Requests over the limit
// are answered with a 429 problem body and never reach the handlers.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !mw.limiter.Allow() {
			p := response.TooManyRequests()
			c.Header("Content-Type", response.ContentTypeProblem)
			c.AbortWithStatusJSON(p.Status, p)
			return
		}
		c.Next()
	}
}
