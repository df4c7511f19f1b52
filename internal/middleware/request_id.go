package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"quote-service/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id: reuses the inbound header when
// present, generates a UUID otherwise. The id is echoed back to the client
// and attached to the request context so every log line carries it.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(requestIDHeader, id)
		ctx := log.CtxWithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
