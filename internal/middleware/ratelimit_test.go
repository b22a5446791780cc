// AngelaMos | 2026
// ratelimit_test.go

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestLocalFallbackEnforcesBurst(t *testing.T) {
	// No Redis client: the limiter runs entirely on the local bucket.
	rl := NewRateLimiter(nil, RateLimitConfig{
		Limit: PerMinute(1, 2),
	})
	handler := rl.Handler(okHandler())

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.9:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Fatalf("first two requests = %v, want both 200", statuses[:2])
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Fatalf("third request = %d, want 429", statuses[2])
	}
}

func TestRateLimitKeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(nil, RateLimitConfig{
		Limit: PerMinute(1, 1),
	})
	handler := rl.Handler(okHandler())

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "203.0.113.9:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, first)
	if rec.Code != http.StatusOK {
		t.Fatalf("first ip = %d", rec.Code)
	}

	second := httptest.NewRequest(http.MethodGet, "/", nil)
	second.RemoteAddr = "198.51.100.7:9999"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, second)
	if rec.Code != http.StatusOK {
		t.Fatalf("different ip should have its own bucket, got %d", rec.Code)
	}
}

func TestRateLimitHeaders(t *testing.T) {
	rl := NewRateLimiter(nil, RateLimitConfig{
		Limit: PerMinute(100, 20),
	})
	handler := rl.Handler(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Header().Get("X-RateLimit-Limit") != "100" {
		t.Errorf("limit header = %q", rec.Header().Get("X-RateLimit-Limit"))
	}
	if rec.Header().Get("X-RateLimit-Remaining") == "" {
		t.Error("remaining header must be set")
	}
}

func TestKeyByIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:5555"
	if got := KeyByIP(req); got != "ratelimit:ip:192.0.2.1" {
		t.Errorf("remote addr key = %q", got)
	}

	req.Header.Set("X-Real-IP", "198.51.100.2")
	if got := KeyByIP(req); got != "ratelimit:ip:198.51.100.2" {
		t.Errorf("x-real-ip key = %q", got)
	}

	// The last hop in X-Forwarded-For wins; earlier entries are spoofable.
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 198.51.100.3")
	if got := KeyByIP(req); got != "ratelimit:ip:198.51.100.3" {
		t.Errorf("x-forwarded-for key = %q", got)
	}
}
