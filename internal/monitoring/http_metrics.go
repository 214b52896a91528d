package monitoring

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	activeHTTPRequests       atomic.Int64
	totalHTTPRequests        atomic.Uint64
	unauthorizedHTTPRequests atomic.Uint64
)

// RequestMetricsMiddleware tracks request counters. Alongside the active and
// total counts it tallies how many requests the session guard or the login
// flow turned away, a cheap signal for token churn or credential stuffing.
func RequestMetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		activeHTTPRequests.Add(1)
		totalHTTPRequests.Add(1)
		defer activeHTTPRequests.Add(-1)

		c.Next()

		if c.Writer.Status() == http.StatusUnauthorized {
			unauthorizedHTTPRequests.Add(1)
		}
	}
}

func getHTTPStats() (active int64, total, unauthorized uint64) {
	return activeHTTPRequests.Load(), totalHTTPRequests.Load(), unauthorizedHTTPRequests.Load()
}
