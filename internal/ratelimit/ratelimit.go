// Package ratelimit applies a sliding-window request limit per
// authenticated user, ahead of any request classification.
package ratelimit

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sycord/server/internal/auth"
	"github.com/sycord/server/internal/errors"
	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// creates a gin middleware limiting requests per user identity. The rate
// uses ulule's formatted notation, e.g. "30-H" for 30 requests per hour.
// Unauthenticated requests fall back to the client IP as the key.
func UserRateLimiter(formatted string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", formatted, err)
	}

	instance := limiter.New(memory.NewStore(), rate)

	return func(c *gin.Context) {
		key, ok := auth.GetUserID(c)
		if !ok {
			key = c.ClientIP()
		}

		limiterCtx, err := instance.Get(c.Request.Context(), key)
		if err != nil {
			errors.InternalError(c, "rate limit check failed", err)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limiterCtx.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", limiterCtx.Remaining))

		if limiterCtx.Reached {
			errors.TooManyRequests(c, "generation rate limit exceeded, try again later")
			c.Abort()
			return
		}

		c.Next()
	}, nil
}
