package http

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	apperrors "github.com/joshuatochinwachi/ronhub-raffle/pkg/app/errors"
)

const (
	// minLimiterTTL is the shortest idle period before a per-client limiter is evicted.
	minLimiterTTL = 10 * time.Minute

	cleanupInterval = time.Minute
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a per-client token bucket of `requests` per `window`.
// The client key is the request's RemoteAddr host, so chi's RealIP middleware
// must run first when the service sits behind a proxy.
type RateLimiter struct {
	name     string
	message  string
	limit    rate.Limit
	burst    int
	window   time.Duration
	ttl      time.Duration
	logger   *zap.Logger
	nowFunc  func() time.Time
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewRateLimiter creates a limiter allowing a burst of `requests` that refills over `window`.
// It starts a background sweep of idle clients; call Stop to release it.
func NewRateLimiter(name string, requests int, window time.Duration, message string, logger *zap.Logger) *RateLimiter {
	ttl := 2 * window
	if ttl < minLimiterTTL {
		ttl = minLimiterTTL
	}
	rl := &RateLimiter{
		name:     name,
		message:  message,
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    requests,
		window:   window,
		ttl:      ttl,
		logger:   logger,
		nowFunc:  time.Now,
		limiters: make(map[string]*limiterEntry),
		stopCh:   make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Stop shuts down the background cleanup goroutine. Safe to call multiple times.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.stopCh)
	})
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCh:
			return
		case <-ticker.C:
			rl.evictStale()
		}
	}
}

func (rl *RateLimiter) evictStale() {
	now := rl.nowFunc()
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, entry := range rl.limiters {
		if now.Sub(entry.lastSeen) > rl.ttl {
			delete(rl.limiters, key)
		}
	}
}

// LimiterCount returns the number of tracked clients.
func (rl *RateLimiter) LimiterCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

// Middleware rejects requests over budget with 429 and the configured message.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := clientKey(r)
		now := rl.nowFunc()

		if !rl.limiterFor(clientIP, now).AllowN(now, 1) {
			rl.logger.Warn("Rate limit exceeded",
				zap.String("limiter", rl.name),
				zap.String("client_ip", clientIP),
				zap.String("path", r.URL.Path),
			)
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			DefaultErrorHandler(w, apperrors.TooManyRequestsError(nil, rl.message))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) limiterFor(key string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if entry, ok := rl.limiters[key]; ok {
		entry.lastSeen = now
		return entry.limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.limiters[key] = &limiterEntry{limiter: limiter, lastSeen: now}
	return limiter
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
