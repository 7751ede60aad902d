package ratelimiter

import (
	"testing"
	"time"

	"github.com/hankosign/hankosign/internal/config"
)

func TestFixedWindowRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 3,
		TimeFrame:            time.Minute,
		Enabled:              true,
	}, nil)

	for i := 0; i < 3; i++ {
		allowed, _ := rl.Allow("10.0.0.1")
		if !allowed {
			t.Fatalf("Expected request %d to be allowed", i+1)
		}
	}

	allowed, retryAfter := rl.Allow("10.0.0.1")
	if allowed {
		t.Error("Expected request over the limit to be denied")
	}
	if retryAfter <= 0 || retryAfter > time.Minute {
		t.Errorf("Expected retry-after within the window, got %v", retryAfter)
	}

	// Another client has its own window.
	if allowed, _ := rl.Allow("10.0.0.2"); !allowed {
		t.Error("Expected a different client to be allowed")
	}
}

func TestFixedWindowRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 1,
		TimeFrame:            time.Minute,
		Enabled:              false,
	}, nil)

	for i := 0; i < 10; i++ {
		if allowed, _ := rl.Allow("10.0.0.1"); !allowed {
			t.Fatal("Expected all requests to pass when limiter is disabled")
		}
	}
}
