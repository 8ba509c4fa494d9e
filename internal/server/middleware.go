package server

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

// statusRecorder captures the status code written by downstream handlers.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// LogRequests logs method, path, status, and duration for every request.
func LogRequests(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			)
		})
	}
}

// CORS allows the configured client origin to call the relay from the
// browser. Preflight requests are answered without reaching the mux.
func CORS(origin string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// limiterCleanupInterval bounds how often idle buckets are swept.
const limiterCleanupInterval = 5 * time.Minute

// ipLimiter manages one token bucket per client IP.
type ipLimiter struct {
	mu           sync.Mutex
	limiters     map[string]*rate.Limiter
	rate         rate.Limit
	burst        int
	lastCleanup  time.Time
	cleanupEvery time.Duration
}

func (l *ipLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters[key] = limiter
	}

	l.maybeCleanup(key)

	return limiter
}

// maybeCleanup evicts idle buckets so the map cannot grow without bound
// under attacker-chosen keys. A bucket back at full capacity has gone at
// least burst/rate without a request, which marks it idle. Callers hold the
// mutex.
func (l *ipLimiter) maybeCleanup(active string) {
	if time.Since(l.lastCleanup) < l.cleanupEvery {
		return
	}
	l.lastCleanup = time.Now()

	for key, limiter := range l.limiters {
		if key == active {
			continue
		}
		if limiter.Tokens() >= float64(l.burst) {
			delete(l.limiters, key)
		}
	}
}

// RateLimitByIP limits requests per client IP using a token bucket.
// Used on the auth routes to slow down credential-guessing traffic.
//
// trustProxy controls whether X-Forwarded-For / X-Real-IP may choose the
// bucket; leave it off unless a trusted proxy sets those headers, since a
// direct caller can forge them.
func RateLimitByIP(r rate.Limit, burst int, trustProxy bool) Middleware {
	limiters := &ipLimiter{
		limiters:     make(map[string]*rate.Limiter),
		rate:         r,
		burst:        burst,
		lastCleanup:  time.Now(),
		cleanupEvery: limiterCleanupInterval,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !limiters.get(clientIP(req, trustProxy)).Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, req)
		})
	}
}

// clientIP resolves the caller address. Proxy headers are only honored when
// the deployment declares a trusted proxy in front of the relay.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			ip, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(ip)
		}

		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
