package util

import (
	"testing"
)

func TestGenerateNChar(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"Generate 8 characters", 8, false},
		{"Generate 32 characters", 32, false},
		{"Generate 0 characters", 0, true},
		{"Generate negative characters", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateNChar(tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("GenerateNChar() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && len(got) != tt.n {
				t.Errorf("GenerateNChar() got = %v, want length %v", got, tt.n)
			}
		})
	}
}

func TestHashToken(t *testing.T) {
	h1 := HashToken("reset-token")
	h2 := HashToken("reset-token")
	h3 := HashToken("another-token")

	if h1 != h2 {
		t.Error("Expected identical input to produce identical hash")
	}
	if h1 == h3 {
		t.Error("Expected different input to produce different hash")
	}
	if len(h1) != 64 {
		t.Errorf("Expected hex sha-256 digest of 64 chars, got %d", len(h1))
	}
	if h1 == "reset-token" {
		t.Error("Expected hash to differ from plain token")
	}
}
