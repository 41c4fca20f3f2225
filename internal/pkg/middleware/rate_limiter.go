package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/mylink/internal/pkg/cache"
	"github.com/piresc/mylink/internal/pkg/constants"
	"github.com/piresc/mylink/internal/pkg/logger"
	"github.com/piresc/mylink/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Store  cache.Store
	Key    string        // Key prefix, one counter per prefix and client address
	Limit  int           // Maximum number of requests per window
	Period time.Duration // Window length, fixed from the first request
}

// RateLimiterMiddleware creates a fixed-window limiter keyed by client address
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("%s:%s", config.Key, c.RealIP())

			count, ttl, err := config.Store.IncrWindow(ctx, key, config.Period)
			if err != nil {
				// Fail open, the OTP flow has its own per-phone limits
				logger.WarnCtx(ctx, "Rate limiter unavailable", logger.String("key", key), logger.Err(err))
				return next(c)
			}

			remaining := config.Limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

			if int(count) > config.Limit {
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.TooManyRequestsResponse(c, "Request was throttled. Please try again later.")
			}

			return next(c)
		}
	}
}

// IPRateLimiter limits one named action per client address
func IPRateLimiter(store cache.Store, scope string, limit int, period time.Duration) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		Store:  store,
		Key:    fmt.Sprintf("%s:%s", constants.KeyRateLimitIP, scope),
		Limit:  limit,
		Period: period,
	})
}
