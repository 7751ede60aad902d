package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

// A nil *Cache stands in when redis is not configured. Every method has to be
// a safe no-op so the write paths can invalidate unconditionally.
func TestNilCacheIsSafe(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	var dest struct{}
	if err := c.GetJSON(ctx, "verify:AB12-CD34-EF56", &dest); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Expected ErrCacheMiss from nil cache, got %v", err)
	}
	if err := c.SetJSON(ctx, "verify:AB12-CD34-EF56", dest, time.Minute); err != nil {
		t.Errorf("Expected nil cache SetJSON to be a no-op, got %v", err)
	}
	if err := c.Delete(ctx, "verify:AB12-CD34-EF56"); err != nil {
		t.Errorf("Expected nil cache Delete to be a no-op, got %v", err)
	}
	if err := c.Ping(ctx); err != nil {
		t.Errorf("Expected nil cache Ping to be a no-op, got %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Expected nil cache Close to be a no-op, got %v", err)
	}
}
