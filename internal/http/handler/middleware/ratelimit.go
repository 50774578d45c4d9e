package middleware

import (
	"context"
	"encoding/json"
	"net"
	"net/http"

	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Limiter . Limiter
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type RateLimitMiddleware struct {
	logs    *zap.SugaredLogger
	limiter Limiter
}

func NewRateLimitMiddleware(logger *zap.SugaredLogger, limiter Limiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		logs:    logger,
		limiter: limiter,
	}
}

// RateLimit rejects requests with 429 once the limiter refuses the client address for route.
// Limiter failures are logged and let the request through.
func (m *RateLimitMiddleware) RateLimit(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId, _ := r.Context().Value(RequestIDKey).(string)

		allowed, err := m.limiter.Allow(r.Context(), route+":"+clientIP(r))
		if err != nil {
			m.logs.Errorw("rate limiter unavailable",
				"error", err,
				"handler", route,
				"request_id", requestId)
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			m.logs.Warnw("rate limit exceeded",
				"remote", clientIP(r),
				"handler", route,
				"request_id", requestId)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"message": "Too many requests",
				"error":   "rate limit exceeded, retry later",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
