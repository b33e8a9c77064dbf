package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func serve(e *echo.Echo, h echo.HandlerFunc, remoteAddr string) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	rec := httptest.NewRecorder()
	return rec, h(e.NewContext(req, rec))
}

func TestRateLimit_RequestsWithinLimit(t *testing.T) {
	e := echo.New()
	h := NewLimiter(RateLimitConfig{RequestsPerSecond: 10, BurstSize: 5}).Middleware()(okHandler)

	for i := 0; i < 5; i++ {
		rec, err := serve(e, h, "")
		if err != nil {
			t.Fatalf("request %d: expected no error, got %v", i+1, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
		if got := rec.Header().Get("X-RateLimit-Limit"); got != "10" {
			t.Errorf("request %d: expected X-RateLimit-Limit '10', got %q", i+1, got)
		}
	}
}

func TestRateLimit_ExceedsLimit(t *testing.T) {
	e := echo.New()
	h := NewLimiter(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 2}).Middleware()(okHandler)

	for i := 0; i < 2; i++ {
		if _, err := serve(e, h, ""); err != nil {
			t.Fatalf("request %d: expected no error, got %v", i+1, err)
		}
	}

	rec, err := serve(e, h, "")
	if err == nil {
		t.Fatal("expected error for rate-limited request")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", httpErr.Code)
	}

	retry, convErr := strconv.Atoi(rec.Header().Get("Retry-After"))
	if convErr != nil || retry < 1 {
		t.Errorf("expected Retry-After >= 1, got %q", rec.Header().Get("Retry-After"))
	}
	if got := rec.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Errorf("expected X-RateLimit-Remaining '0', got %q", got)
	}
}

func TestRateLimit_PerAddressIsolation(t *testing.T) {
	e := echo.New()
	h := NewLimiter(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1}).Middleware()(okHandler)

	if _, err := serve(e, h, "10.0.0.1:1000"); err != nil {
		t.Fatalf("client a first request: %v", err)
	}
	if _, err := serve(e, h, "10.0.0.1:2000"); err == nil {
		t.Fatal("client a second request: expected rate limit error")
	}
	if _, err := serve(e, h, "10.0.0.2:1000"); err != nil {
		t.Fatalf("client b first request: %v", err)
	}
}

func TestRateLimit_IgnoresSessionID(t *testing.T) {
	e := echo.New()
	l := NewLimiter(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1})
	h := l.Middleware()(okHandler)

	limited := 0
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.Set("session_id", strconv.Itoa(i))
		if err := h(c); err != nil {
			limited++
		}
	}
	if limited != 4 {
		t.Errorf("expected 4 limited requests, got %d", limited)
	}
	if l.Len() != 1 {
		t.Errorf("expected one bucket for one address, got %d", l.Len())
	}
}

func TestLimiter_Refills(t *testing.T) {
	now := time.Unix(1000, 0)
	l := NewLimiter(RateLimitConfig{RequestsPerSecond: 2, BurstSize: 1})
	l.now = func() time.Time { return now }

	if ok, _ := l.allow("k"); !ok {
		t.Fatal("expected first request allowed")
	}
	if ok, _ := l.allow("k"); ok {
		t.Fatal("expected second request limited")
	}
	now = now.Add(500 * time.Millisecond)
	if ok, _ := l.allow("k"); !ok {
		t.Error("expected request allowed after refill")
	}
}

func TestLimiter_ZeroRateRetryAfter(t *testing.T) {
	l := NewLimiter(RateLimitConfig{RequestsPerSecond: 0, BurstSize: 1})
	l.allow("k")
	if ok, retry := l.allow("k"); ok || retry != 1 {
		t.Errorf("expected limited with retry 1, got ok=%v retry=%d", ok, retry)
	}
}

func TestLimiter_Sweep(t *testing.T) {
	now := time.Unix(1000, 0)
	l := NewLimiter(RateLimitConfig{RequestsPerSecond: 1, BurstSize: 1, IdleTTL: time.Minute})
	l.now = func() time.Time { return now }

	l.allow("old")
	now = now.Add(2 * time.Minute)
	l.allow("new")

	if removed := l.Sweep(); removed != 1 {
		t.Errorf("expected 1 bucket swept, got %d", removed)
	}
	if l.Len() != 1 {
		t.Errorf("expected 1 bucket left, got %d", l.Len())
	}
}

func TestRateLimit_DefaultConfig(t *testing.T) {
	cfg := DefaultRateLimitConfig()
	if cfg.RequestsPerSecond != 50 {
		t.Errorf("expected RequestsPerSecond 50, got %f", cfg.RequestsPerSecond)
	}
	if cfg.BurstSize != 100 {
		t.Errorf("expected BurstSize 100, got %d", cfg.BurstSize)
	}
}
