package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VELIFZ/mechanicshop-api/internal/infrastructure/ratelimit"
	"github.com/VELIFZ/mechanicshop-api/internal/shared/utils"
)

// RateLimitMiddleware throttles per client IP. It fronts the login and
// registration endpoints to slow down credential stuffing; shared Redis makes
// the limit hold across instances.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	limit   int
	window  time.Duration
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, limit int, window time.Duration) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		limit:   limit,
		window:  window,
	}
}

func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ip:%s", c.ClientIP())

		allowed, err := m.limiter.Allow(c.Request.Context(), key, m.limit, m.window)
		if err != nil {
			// When Redis is unavailable, let the request through rather than
			// blocking all traffic.
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
