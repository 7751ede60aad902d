package util

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Passw0rd")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "Passw0rd" {
		t.Error("Expected hash to differ from the plain password")
	}

	if !ComparePassword(hash, "Passw0rd") {
		t.Error("Expected matching password to compare successfully")
	}

	if ComparePassword(hash, "wrong-password") {
		t.Error("Expected non-matching password to fail comparison")
	}
}

func TestValidatePasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Passw0rd", true},
		{"too short", "Pw0rd", false},
		{"no uppercase", "passw0rd", false},
		{"no lowercase", "PASSW0RD", false},
		{"no digit", "Password", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := ValidatePasswordPolicy(tt.password)
			if got != tt.want {
				t.Errorf("ValidatePasswordPolicy(%q) = %v (%s), want %v", tt.password, got, msg, tt.want)
			}
			if !got && msg == "" {
				t.Error("Expected a reason message for an invalid password")
			}
		})
	}
}
