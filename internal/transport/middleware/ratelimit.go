package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/calorie-backend/pkg/ctxutil"
)

// RateLimiter implements per-IP token bucket rate limiting. Each Limit
// middleware keeps its own buckets, so routes are limited independently.
type RateLimiter struct {
	mu      sync.Mutex
	scopes  []*sync.Map // map[string]*bucket per Limit call
	idleTTL time.Duration
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

type bucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		idleTTL: 10 * time.Minute,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. Safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that rate-limits requests to maxPerMinute per
// client IP. The IP comes from ClientIP, falling back to RemoteAddr.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	buckets := &sync.Map{}
	rl.mu.Lock()
	rl.scopes = append(rl.scopes, buckets)
	rl.mu.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ctxutil.ClientIPFromCtx(r.Context())
			if ip == "" {
				ip = clientIP(r, false)
			}

			b := rl.getBucket(buckets, ip, maxPerMinute)
			if wait, ok := b.allow(rl.now()); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) getBucket(buckets *sync.Map, key string, maxPerMinute int) *bucket {
	maxTokens := float64(maxPerMinute)

	val, _ := buckets.LoadOrStore(key, &bucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: maxTokens / 60.0,
		lastRefill: rl.now(),
	})

	return val.(*bucket)
}

// allow takes a token. When none is left it reports how long until the
// next one.
func (b *bucket) allow(now time.Time) (time.Duration, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	elapsed := now.Sub(b.lastRefill).Seconds()
	if elapsed > 0 {
		b.tokens = math.Min(b.maxTokens, b.tokens+elapsed*b.refillRate)
		b.lastRefill = now
	}

	if b.tokens < 1 {
		missing := 1 - b.tokens
		return time.Duration(missing / b.refillRate * float64(time.Second)), false
	}
	b.tokens--
	return 0, true
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

// sweep drops buckets idle for longer than idleTTL.
func (rl *RateLimiter) sweep() {
	now := rl.now()

	rl.mu.Lock()
	scopes := append([]*sync.Map(nil), rl.scopes...)
	rl.mu.Unlock()

	for _, buckets := range scopes {
		buckets.Range(func(key, value any) bool {
			b := value.(*bucket)
			b.mu.Lock()
			idle := now.Sub(b.lastRefill)
			b.mu.Unlock()
			if idle > rl.idleTTL {
				buckets.Delete(key)
			}
			return true
		})
	}
}
