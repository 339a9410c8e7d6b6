package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IYair/disclosure-page-uac-sub000/internal/infrastructure/ratelimit"
	sharedConfig "github.com/IYair/disclosure-page-uac-sub000/internal/shared/config"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/constants"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/logger"
	"github.com/IYair/disclosure-page-uac-sub000/internal/shared/utils"
)

// SubmitRateLimit throttles content submissions per authenticated user.
// Anonymous requests fall back to the client IP. A failing limiter lets
// the request through so a redis outage does not block all writes.
func SubmitRateLimit(limiter ratelimit.RateLimiter, cfg sharedConfig.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	limits := ratelimit.RateLimitConfig{
		RequestsPerMinute: cfg.RequestsPerMinute,
		RequestsPerHour:   cfg.RequestsPerHour,
		RequestsPerDay:    cfg.RequestsPerDay,
	}

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		key := c.ClientIP()
		if userID, ok := c.Get(constants.ContextKeyUserID); ok {
			key = fmt.Sprintf("user:%v", userID)
		}

		allowed, err := limiter.Allow("submit:"+key, limits)
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err)
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
