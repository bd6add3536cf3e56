package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const clientIdleTTL = 10 * time.Minute

// RateLimiter keeps a token bucket per client IP and limit. Buckets idle for
// longer than ten minutes are evicted by a background sweep.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter starts the eviction sweep at the given interval.
// Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.sweepEvery(cleanupInterval)
	return rl
}

// Stop ends the eviction sweep. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit allows each client IP a burst of maxPerMinute requests, refilled
// evenly over a minute. Rejected requests get 429 with Retry-After.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	every := time.Minute / time.Duration(maxPerMinute)
	retryAfter := strconv.Itoa(int((every + time.Second - 1) / time.Second))
	prefix := strconv.Itoa(maxPerMinute) + "/"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(prefix+clientIP(r), every, maxPerMinute) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(key string, every time.Duration, burst int) bool {
	now := rl.now()

	rl.mu.Lock()
	c, ok := rl.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rate.Every(every), burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	rl.mu.Unlock()

	return c.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) sweepEvery(interval time.Duration) {
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

func (rl *RateLimiter) sweep() {
	cutoff := rl.now().Add(-clientIdleTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, c := range rl.clients {
		if c.lastSeen.Before(cutoff) {
			delete(rl.clients, key)
		}
	}
}

// clientIP returns the host part of RemoteAddr. Run behind a proxy that
// rewrites RemoteAddr if X-Forwarded-For must be honoured.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
