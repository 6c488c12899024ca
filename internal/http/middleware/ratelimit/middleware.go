package ratelimit

import (
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"volunteer-dispatch/internal/logx"
)

// KeyFunc derives the limiter key of a request.
type KeyFunc func(r *http.Request) string

// Middleware rejects requests with 429 once their key runs out of tokens.
type Middleware struct {
	logger  logx.Logger
	denied  prometheus.Counter
	limiter Limiter
	key     KeyFunc
}

// New creates a Middleware. A nil limiter admits everything and a nil key
// falls back to the client address.
func New(logger logx.Logger, denied prometheus.Counter, limiter Limiter, key KeyFunc) *Middleware {
	if limiter == nil {
		limiter = nopLimiter{}
	}
	if key == nil {
		key = clientIP
	}
	return &Middleware{logger: logger, denied: denied, limiter: limiter, key: key}
}

// HeaderOrIP keys requests by the given header, falling back to the client address
// for anonymous callers.
func HeaderOrIP(header string) KeyFunc {
	return func(r *http.Request) string {
		if v := strings.TrimSpace(r.Header.Get(header)); v != "" {
			return header + ":" + v
		}
		return clientIP(r)
	}
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := m.key(r)
			if m.limiter.Allow(key) {
				next.ServeHTTP(w, r)
				return
			}

			if m.denied != nil {
				m.denied.Inc()
			}
			m.logger.Warn("rate limit exceeded",
				logx.String("key", key),
				logx.String("method", r.Method),
				logx.String("path", r.URL.Path),
			)
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := io.WriteString(w, `{"error":"too many requests"}`); err != nil {
				m.logger.Debug("rate limit response write failed", logx.String("key", key), logx.Err(err))
			}
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
