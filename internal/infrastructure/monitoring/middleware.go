package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// unmatchedRoute labels requests that hit no registered route.
const unmatchedRoute = "unmatched"

// Middleware records request count, latency and sizes for every request.
// The path label is the route template, never the raw URL.
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.RecordHTTPRequest(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
			nonNegative(c.Request.ContentLength),
			nonNegative(int64(c.Writer.Size())),
		)
	}
}

// gin reports -1 for unwritten bodies and net/http for unknown lengths.
func nonNegative(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}

// Timer times one service call. A nil Timer or one without metrics is a no-op.
type Timer struct {
	metrics *Metrics
	service string
	tool    string
	began   time.Time
}

func NewTimer(metrics *Metrics, service, tool string) *Timer {
	return &Timer{metrics: metrics, service: service, tool: tool, began: time.Now()}
}

// Stop records the elapsed time under status ("success", "failure", "error").
func (t *Timer) Stop(status string) {
	if t == nil || t.metrics == nil {
		return
	}
	t.metrics.RecordServiceCall(t.service, t.tool, status, time.Since(t.began))
}
