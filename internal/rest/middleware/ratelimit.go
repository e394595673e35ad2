package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goCache "github.com/patrickmn/go-cache"
	"github.com/smsdesk/smsdesk/internal/config"
	"github.com/smsdesk/smsdesk/internal/types"
	"golang.org/x/time/rate"
)

// idle limiters are forgotten after this long
const limiterTTL = 10 * time.Minute

// RateLimitMiddleware allows each client IP cfg.RateLimit.RPS requests per
// second with bursts of cfg.RateLimit.Burst.
func RateLimitMiddleware(cfg *config.Configuration) gin.HandlerFunc {
	if !cfg.RateLimit.Enabled || cfg.RateLimit.RPS <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	burst := cfg.RateLimit.Burst
	if burst <= 0 {
		burst = 1
	}
	limiters := goCache.New(limiterTTL, 2*limiterTTL)

	return func(c *gin.Context) {
		key := c.ClientIP()

		limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), burst)
		if err := limiters.Add(key, limiter, goCache.DefaultExpiration); err != nil {
			if existing, ok := limiters.Get(key); ok {
				limiter = existing.(*rate.Limiter)
			}
		}
		// slide the expiry so an active client keeps its bucket
		limiters.Set(key, limiter, goCache.DefaultExpiration)

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				types.NewFailureResult("Too many requests, please slow down.", types.ResolveRedirectTarget(types.RedirectBack, c.GetHeader(types.HeaderReferer))))
			return
		}
		c.Next()
	}
}
