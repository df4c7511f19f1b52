package middleware

import (
	"github.com/gin-gonic/gin"

	"quote-service/pkg/response"
)

// Recovery is the outermost failure boundary: any fault that was not
// expressed as an outcome (a genuine bug, an unwrapped I/O panic) lands here
// exactly once. It is logged with full detail and answered with the fixed
// generic 500 problem — nothing internal leaks to the client and the fault
// never re-enters business logic.
func (mw Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		ctx := c.Request.Context()
		mw.l.Errorf(ctx, "panic recovered on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)

		p := response.InternalProblem()
		c.Header("Content-Type", response.ContentTypeProblem)
		c.AbortWithStatusJSON(p.Status, p)
	})
}
