package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/RaidCompanion_Go/internal/logger"
)

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func isReadOnly(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}

// AuthMiddleware requires the API key on write requests. An empty key disables the check.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *ClientActivityTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) || isReadOnly(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type clientWindow struct {
	start      time.Time
	requests   int
	failedAuth int
}

// ClientActivityTracker counts requests and failed logins per client IP in fixed windows.
// Idle clients age out of a bounded LRU.
type ClientActivityTracker struct {
	mu      sync.Mutex
	clients *expirable.LRU[string, *clientWindow]
	window  time.Duration
	limit   int
	now     func() time.Time
}

// NewClientActivityTracker creates a tracker allowing limit requests per window
func NewClientActivityTracker(limit int, window time.Duration) *ClientActivityTracker {
	return &ClientActivityTracker{
		clients: expirable.NewLRU[string, *clientWindow](maxTrackedClients, nil, window),
		window:  window,
		limit:   limit,
		now:     time.Now,
	}
}

// caller holds mu
func (t *ClientActivityTracker) windowFor(ip string) *clientWindow {
	now := t.now()
	cw, ok := t.clients.Get(ip)
	if !ok || now.Sub(cw.start) > t.window {
		cw = &clientWindow{start: now}
		t.clients.Add(ip, cw)
	}
	return cw
}

// RecordFailedAuth counts a failed authentication and alerts past the threshold
func (t *ClientActivityTracker) RecordFailedAuth(ip string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cw := t.windowFor(ip)
	cw.failedAuth++
	if cw.failedAuth >= failedAuthAlertAt {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", cw.failedAuth)
	}
}

// RecordRequest counts a request and reports whether the client is still under its limit
func (t *ClientActivityTracker) RecordRequest(ip string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	cw := t.windowFor(ip)
	cw.requests++
	if cw.requests > t.limit {
		if cw.requests%100 == 0 {
			slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", cw.requests)
		}
		return false
	}
	return true
}

// RateLimitMiddleware rejects clients over their request budget
func RateLimitMiddleware(trustedProxies []string, tracker *ClientActivityTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !tracker.RecordRequest(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is honoured only from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if slices.Contains(trustedProxies, remoteIP) {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// rightmost hop is the one our proxy saw
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueDeny)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			next.ServeHTTP(w, r)
		})
	}
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
