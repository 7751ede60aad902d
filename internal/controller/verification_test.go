package controller

import "testing"

func TestVerifyCacheKey(t *testing.T) {
	// The lookup and the invalidation paths must agree on the key.
	if got := verifyCacheKey("AB12-CD34-EF56"); got != "verify:AB12-CD34-EF56" {
		t.Errorf("Expected verify:AB12-CD34-EF56, got %s", got)
	}
}
