package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appErrors "github.com/learnsphere/learnsphere-api/pkg/errors"
	"github.com/learnsphere/learnsphere-api/pkg/response"
)

type rateLimitStore interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimitConfig tunes the fixed-window limiter.
type RateLimitConfig struct {
	Window time.Duration
	Max    int
}

// RateLimit caps requests per client IP and route within a fixed window.
// A limiter backend failure lets the request through: throttling is a
// protection layer and must never take the public forms down with it.
func RateLimit(store rateLimitStore, cfg RateLimitConfig, logger *zap.Logger) gin.HandlerFunc {
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.Max <= 0 {
		cfg.Max = 30
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		if store == nil {
			c.Next()
			return
		}
		key := fmt.Sprintf("ratelimit:%s:%s", c.ClientIP(), c.FullPath())
		count, err := store.Hit(c.Request.Context(), key, cfg.Window)
		if err != nil {
			logger.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if count > int64(cfg.Max) {
			response.Error(c, appErrors.ErrRateLimited)
			c.Abort()
			return
		}
		c.Next()
	}
}
