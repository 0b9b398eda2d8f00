package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiterAllow(t *testing.T) {
	now := time.Unix(1700000000, 0)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatal("Expected first two requests to pass")
	}
	if rl.Allow("a") {
		t.Error("Expected third request within the window to be limited")
	}
	if !rl.Allow("b") {
		t.Error("Expected another client to have its own budget")
	}

	now = now.Add(time.Minute)
	if !rl.Allow("a") {
		t.Error("Expected budget to recover after the window")
	}
}

func TestRateLimiterEvict(t *testing.T) {
	now := time.Unix(1700000000, 0)
	rl := NewRateLimiter(5, time.Second)
	rl.now = func() time.Time { return now }

	rl.Allow("a")
	now = now.Add(2 * time.Second)
	rl.evict()

	if len(rl.requests) != 0 {
		t.Errorf("Expected idle client to be evicted, got %d entries", len(rl.requests))
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(NewRateLimiter(1, time.Minute)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != want {
			t.Errorf("Request %d: expected %d, got %d", i, want, w.Code)
		}
	}
}

func TestDeviceTokensRoundTrip(t *testing.T) {
	tokens, err := NewDeviceTokens("secret")
	if err != nil {
		t.Fatalf("NewDeviceTokens failed: %v", err)
	}

	id, token, err := tokens.Issue()
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	got, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if got != id {
		t.Errorf("Expected %s, got %s", id, got)
	}

	other, _ := NewDeviceTokens("another-secret")
	if _, err := other.Verify(token); err == nil {
		t.Error("Expected a token signed with another secret to be rejected")
	}
	if _, err := tokens.Verify("garbage"); err == nil {
		t.Error("Expected garbage to be rejected")
	}
}

func TestDeviceTokenExpiry(t *testing.T) {
	tokens, _ := NewDeviceTokens("secret")
	issued := time.Now()
	tokens.now = func() time.Time { return issued }

	_, token, err := tokens.Issue()
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	tokens.now = func() time.Time { return issued.Add(deviceTTL + time.Hour) }
	if _, err := tokens.Verify(token); err == nil {
		t.Error("Expected an expired token to be rejected")
	}
}

func TestNewDeviceTokensRequiresSecret(t *testing.T) {
	if _, err := NewDeviceTokens(""); err == nil {
		t.Error("Expected an empty secret to be rejected")
	}
}

func TestDeviceMiddleware(t *testing.T) {
	tokens, _ := NewDeviceTokens("secret")

	r := gin.New()
	r.Use(Device(tokens, false))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, DeviceID(c)) })

	// first visit gets a cookie
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	cookie := w.Header().Get("Set-Cookie")
	if !strings.HasPrefix(cookie, DeviceCookie+"=") {
		t.Fatalf("Expected a device cookie, got %q", cookie)
	}
	firstID := w.Body.String()
	if firstID == "" {
		t.Fatal("Expected a device id on the first request")
	}

	// returning visit keeps the same id and gets no new cookie
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", strings.SplitN(cookie, ";", 2)[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Body.String(); got != firstID {
		t.Errorf("Expected device id %s, got %s", firstID, got)
	}
	if w.Header().Get("Set-Cookie") != "" {
		t.Error("Expected no new cookie for a known device")
	}
}

func TestRateLimitCookielessClientsShareIPBudget(t *testing.T) {
	tokens, _ := NewDeviceTokens("secret")

	r := gin.New()
	r.Use(Device(tokens, false), RateLimit(NewRateLimiter(1, time.Minute)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	limited := 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:4000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			limited++
		}
	}
	if limited != 49 {
		t.Errorf("Expected 49 limited requests, got %d", limited)
	}

	// a returning device has its own budget
	_, token, err := tokens.Issue()
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:4000"
	req.AddCookie(&http.Cookie{Name: DeviceCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for a known device, got %d", w.Code)
	}
}
