package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"
)

// Throttle lets at most limit requests through at once and answers the rest
// with 429 Too Many Requests. A non-positive limit disables throttling.
func Throttle(limit int64) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	sem := semaphore.NewWeighted(limit)
	return func(c *gin.Context) {
		if !sem.TryAcquire(1) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many exploration requests in flight"})
			c.Abort()
			return
		}
		defer sem.Release(1)

		c.Next()
	}
}
