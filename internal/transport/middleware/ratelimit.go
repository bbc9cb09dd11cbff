package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter applies a fixed-window request limit keyed by client IP.
// With a Redis client the window counters are shared across replicas;
// without one it falls back to an in-process counter.
type RateLimiter struct {
	counter counter
	limit   int
	window  time.Duration
}

type counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// NewRateLimiter creates a rate limiter allowing limit requests per window.
// client may be nil for a single-process deployment.
func NewRateLimiter(limit int, window time.Duration, client redis.UniversalClient) *RateLimiter {
	var c counter
	if client != nil {
		c = &redisCounter{client: client}
	} else {
		c = &localCounter{entries: make(map[string]*windowEntry)}
	}
	return &RateLimiter{counter: c, limit: limit, window: window}
}

// Limit returns the rate-limiting middleware.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			n, err := rl.counter.Incr(r.Context(), "ratelimit:"+clientIP(r), rl.window)
			if err != nil {
				// A broken counter must not take the API down.
				next.ServeHTTP(w, r)
				return
			}
			if n > int64(rl.limit) {
				w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type redisCounter struct {
	client redis.UniversalClient
}

func (c *redisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	n, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err := c.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return n, nil
}

type localCounter struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
}

type windowEntry struct {
	count   int64
	resetAt time.Time
}

func (c *localCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	e, ok := c.entries[key]
	if !ok || now.After(e.resetAt) {
		if len(c.entries) > 4096 {
			c.prune(now)
		}
		e = &windowEntry{resetAt: now.Add(window)}
		c.entries[key] = e
	}
	e.count++
	return e.count, nil
}

// prune drops expired windows. Caller holds the lock.
func (c *localCounter) prune(now time.Time) {
	for key, e := range c.entries {
		if now.After(e.resetAt) {
			delete(c.entries, key)
		}
	}
}
