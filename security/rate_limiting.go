package security

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Abdul1ayev/Tickets/internal/status"
)

// RateLimiter throttles purchase attempts with a fixed redis counter
// window per caller.
type RateLimiter struct {
	redis  *redis.Client
	limit  int
	window time.Duration
}

func NewRateLimiter(redisClient *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redis:  redisClient,
		limit:  limit,
		window: window,
	}
}

// Allow counts one request for the given caller key. Redis trouble never
// blocks a purchase; only an exceeded counter does.
func (r *RateLimiter) Allow(ctx context.Context, key string) error {
	counterKey := fmt.Sprintf("ratelimit:%s", key)

	count, err := r.redis.Incr(ctx, counterKey).Result()
	if err != nil {
		return nil
	}
	if count == 1 {
		r.redis.Expire(ctx, counterKey, r.window)
	}
	if count > int64(r.limit) {
		return status.ErrRateLimited
	}
	return nil
}

// IsSuspiciousUserAgent flags obvious scraper agents.
func IsSuspiciousUserAgent(ua string) bool {
	suspicious := []string{"bot", "crawler", "spider", "scraper"}
	for _, pattern := range suspicious {
		if strings.Contains(strings.ToLower(ua), pattern) {
			return true
		}
	}
	return false
}
