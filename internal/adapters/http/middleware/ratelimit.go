package middleware

import (
	"encoding/json"
	"net/http"

	"golang.org/x/time/rate"

	"huntboard/internal/adapters/http/dto"
)

// RateLimit returns middleware that applies a global token-bucket rate limit
// to inbound requests. Requests that find no token available are rejected
// immediately with 429 rather than queued, so a burst of drag events degrades
// to dropped moves instead of piled-up latency.
//
// A requestsPerSecond of zero or less disables limiting and returns a
// pass-through middleware.
func RateLimit(requestsPerSecond float64, burst int) func(http.Handler) http.Handler {
	if requestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeRateLimited(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// writeRateLimited writes an RFC 9457 problem response for a rejected request.
func writeRateLimited(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.Header().Set("Retry-After", "1")
	w.WriteHeader(http.StatusTooManyRequests)

	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(http.StatusTooManyRequests),
		Status:   http.StatusTooManyRequests,
		Detail:   "request rate limit exceeded",
		Instance: r.RequestURI,
	})
}
