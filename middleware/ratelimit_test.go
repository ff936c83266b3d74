package middleware

import (
	"testing"
	"time"
)

// TestIPRateLimiterAllow checks the per-IP cap within one window.
func TestIPRateLimiterAllow(t *testing.T) {
	rl := NewIPRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("request over the limit should be blocked")
	}

	// A different client has its own window.
	if !rl.Allow("10.0.0.2") {
		t.Fatal("second IP should be allowed")
	}
}

// TestIPRateLimiterWindowExpiry ensures old requests stop counting once
// the window has passed.
func TestIPRateLimiterWindowExpiry(t *testing.T) {
	rl := NewIPRateLimiter(1, 10*time.Millisecond)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("second request should be blocked")
	}

	time.Sleep(15 * time.Millisecond)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("request after window expiry should be allowed")
	}
}
