package ratelimiter

import (
	"sync"
	"time"

	"github.com/hankosign/hankosign/internal/config"
	"go.uber.org/zap"
)

type FixedWindowRateLimiter struct {
	sync.RWMutex
	clients map[string]*clientWindow
	cfg     config.RateLimiterConfig
	logger  *zap.SugaredLogger
}

type clientWindow struct {
	count       int
	windowStart time.Time
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	rl := &FixedWindowRateLimiter{
		clients: make(map[string]*clientWindow),
		cfg:     cfg,
		logger:  logger,
	}

	go rl.cleanupLoop()

	return rl
}

// Allow reports whether the client identified by ip may proceed. When the
// window is exhausted it returns the time remaining until the window resets.
func (rl *FixedWindowRateLimiter) Allow(ip string) (bool, time.Duration) {
	if !rl.cfg.Enabled {
		return true, 0
	}

	now := time.Now()

	rl.Lock()
	defer rl.Unlock()

	window, exists := rl.clients[ip]
	if !exists || now.Sub(window.windowStart) >= rl.cfg.TimeFrame {
		rl.clients[ip] = &clientWindow{count: 1, windowStart: now}
		return true, 0
	}

	if window.count >= rl.cfg.RequestsPerTimeFrame {
		retryAfter := rl.cfg.TimeFrame - now.Sub(window.windowStart)
		return false, retryAfter
	}

	window.count++
	return true, 0
}

// cleanupLoop evicts stale windows so the map does not grow with every ip
// that ever hit the server.
func (rl *FixedWindowRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cfg.TimeFrame)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()

		rl.Lock()
		for ip, window := range rl.clients {
			if now.Sub(window.windowStart) >= rl.cfg.TimeFrame {
				delete(rl.clients, ip)
			}
		}
		rl.Unlock()
	}
}
