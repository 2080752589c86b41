package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/ratelimit"

	"github.com/hushboard/backend/config"
)

// RateLimit smooths post creation with a leaky bucket. Disabled it is a
// no-op; the rest of the system only depends on this on/off contract.
func RateLimit(conf config.RateLimit) gin.HandlerFunc {
	if !conf.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	limiter := ratelimit.New(conf.PerMinute, ratelimit.Per(time.Minute))
	return func(c *gin.Context) {
		limiter.Take()
		c.Next()
	}
}
