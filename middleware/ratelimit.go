// middleware/ratelimit.go
package middleware

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Token bucket rate limiter implementation
type TokenBucket struct {
	tokens         float64
	maxTokens      float64
	refillRate     float64 // tokens per second
	lastRefillTime time.Time
	mu             sync.Mutex
}

func NewTokenBucket(maxTokens, refillRate float64) *TokenBucket {
	return &TokenBucket{
		tokens:         maxTokens,
		maxTokens:      maxTokens,
		refillRate:     refillRate,
		lastRefillTime: time.Now(),
	}
}

func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefillTime).Seconds()
	tb.tokens += elapsed * tb.refillRate
	if tb.tokens > tb.maxTokens {
		tb.tokens = tb.maxTokens
	}
	tb.lastRefillTime = now

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

type rateLimiter struct {
	buckets    map[string]*TokenBucket
	mu         sync.RWMutex
	maxTokens  float64
	refillRate float64
}

func newRateLimiter(maxTokens, refillRate float64) *rateLimiter {
	rl := &rateLimiter{
		buckets:    make(map[string]*TokenBucket),
		maxTokens:  maxTokens,
		refillRate: refillRate,
	}
	go rl.cleanup()
	return rl
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.RLock()
	bucket, ok := rl.buckets[key]
	rl.mu.RUnlock()

	if !ok {
		rl.mu.Lock()
		bucket, ok = rl.buckets[key]
		if !ok {
			bucket = NewTokenBucket(rl.maxTokens, rl.refillRate)
			rl.buckets[key] = bucket
		}
		rl.mu.Unlock()
	}
	return bucket.Allow()
}

// cleanup drops idle buckets so the map does not grow without bound.
func (rl *rateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		rl.mu.Lock()
		for key, bucket := range rl.buckets {
			bucket.mu.Lock()
			idle := time.Since(bucket.lastRefillTime) > 30*time.Minute
			bucket.mu.Unlock()
			if idle {
				delete(rl.buckets, key)
			}
		}
		rl.mu.Unlock()
	}
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

// FiberRateLimitMiddleware limits all API traffic per client IP.
func FiberRateLimitMiddleware() fiber.Handler {
	limiter := newRateLimiter(
		envFloat("RATE_LIMIT_BURST", 60),
		envFloat("RATE_LIMIT_PER_SECOND", 10),
	)

	return func(c *fiber.Ctx) error {
		if !limiter.allow(c.IP()) {
			return c.Status(429).JSON(fiber.Map{
				"success": false,
				"error":   "Too many requests",
			})
		}
		return c.Next()
	}
}

// FiberAuthRateLimitMiddleware applies a stricter budget to auth endpoints.
func FiberAuthRateLimitMiddleware() fiber.Handler {
	limiter := newRateLimiter(
		envFloat("AUTH_RATE_LIMIT_BURST", 10),
		envFloat("AUTH_RATE_LIMIT_PER_SECOND", 0.5),
	)

	return func(c *fiber.Ctx) error {
		if !limiter.allow(c.IP()) {
			return c.Status(429).JSON(fiber.Map{
				"success": false,
				"error":   "Too many authentication attempts",
			})
		}
		return c.Next()
	}
}
