package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/shared/id"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key holding the request ID
const RequestIDKey = "request_id"

// RequestID stamps every request with a ULID request ID. A well-formed
// incoming X-Request-ID is kept; anything else is replaced.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" || len(reqID) > 64 || !id.IsValid(reqID) {
			reqID = id.NewRequestID().String()
		}
		c.Set(RequestIDKey, reqID)
		c.Header(RequestIDHeader, reqID)
		c.Next()
	}
}
