package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/RobNel12/newbot-ai/internal/logger"
)

// AccessGuard counts requests and failed key checks per client address in
// fixed windows of RateLimitWindow. Counters reset together when a window ends.
type AccessGuard struct {
	mu       sync.Mutex
	window   time.Duration
	started  time.Time
	requests map[string]int
	failures map[string]int
	now      func() time.Time
}

// NewAccessGuard creates a guard using RateLimitWindow
func NewAccessGuard() *AccessGuard {
	return newAccessGuard(RateLimitWindow, time.Now)
}

func newAccessGuard(window time.Duration, now func() time.Time) *AccessGuard {
	return &AccessGuard{
		window:   window,
		started:  now(),
		requests: make(map[string]int),
		failures: make(map[string]int),
		now:      now,
	}
}

// Allow counts one request from ip and reports whether it is within limit
func (g *AccessGuard) Allow(ip string, limit int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.roll()
	g.requests[ip]++
	n := g.requests[ip]
	if n <= limit {
		return true
	}
	if (n-limit)%RateLimitLogEvery == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count", n, "limit", limit)
	}
	return false
}

// RecordFailedAuth counts a rejected API key and reports whether ip is now locked out
func (g *AccessGuard) RecordFailedAuth(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.roll()
	g.failures[ip]++
	n := g.failures[ip]
	switch {
	case n == FailedAuthLockout:
		slog.Warn(SecurityAlertLockedOut, "ip", ip, "count", n)
	case n == FailedAuthAlertAttempts:
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
	return n >= FailedAuthLockout
}

// LockedOut reports whether ip has used up its failed key checks for this window
func (g *AccessGuard) LockedOut(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.roll()
	return g.failures[ip] >= FailedAuthLockout
}

// RetryAfter is the time left in the current window, rounded up to a second
func (g *AccessGuard) RetryAfter() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.roll()
	left := g.started.Add(g.window).Sub(g.now())
	return max(time.Second, left.Round(time.Second))
}

// roll starts a new window once the current one is over. Caller holds mu.
func (g *AccessGuard) roll() {
	now := g.now()
	if now.Sub(g.started) < g.window {
		return
	}
	clear(g.requests)
	clear(g.failures)
	g.started = now
}

// AuthMiddleware requires the engine API key on everything but PublicPaths.
// An address with FailedAuthLockout failures is refused until the window ends.
func AuthMiddleware(apiKey string, trustedProxies []string, guard *AccessGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r, trustedProxies)
			if guard.LockedOut(ip) {
				tooManyRequests(w, guard, ErrMsgLockedOut)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				lockedOut := guard.RecordFailedAuth(ip)
				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip,
					"locked_out", lockedOut)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware caps requests per client address. Game routes get the
// bot's budget; probes and scrapes get ProbeRequestsPerWindow.
func RateLimitMiddleware(trustedProxies []string, guard *AccessGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limit := BotRequestsPerWindow
			if isPublicPath(r.URL.Path) {
				limit = ProbeRequestsPerWindow
			}

			ip := clientIP(r, trustedProxies)
			if !guard.Allow(ip, limit) {
				logger.FromContext(r.Context()).Warn(ErrMsgTooManyRequests, "ip", ip, "path", r.URL.Path)
				tooManyRequests(w, guard, ErrMsgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func tooManyRequests(w http.ResponseWriter, guard *AccessGuard, msg string) {
	w.Header().Set(HeaderRetryAfter, strconv.Itoa(int(guard.RetryAfter().Seconds())))
	http.Error(w, msg, http.StatusTooManyRequests)
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	return slices.ContainsFunc(PublicPaths, func(p string) bool {
		return strings.HasPrefix(path, p)
	})
}

// clientIP returns the peer address, or the rightmost X-Forwarded-For hop when
// the peer is a trusted proxy.
func clientIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if slices.Contains(trustedProxies, remoteIP) {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			hops := strings.Split(forwarded, ",")
			return strings.TrimSpace(hops[len(hops)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware marks every answer as uncacheable JSON that must
// not be sniffed or framed
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentTypeOptions, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			h.Set(HeaderReferrerPolicy, HeaderValueNoReferrer)
			h.Set(HeaderCacheControl, HeaderValueNoStore)

			next.ServeHTTP(w, r)
		})
	}
}
