package util

import (
	"regexp"
	"testing"
)

var verificationCodePattern = regexp.MustCompile(`^[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

func TestGenerateVerificationCodeFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateVerificationCode()
		if err != nil {
			t.Fatalf("GenerateVerificationCode() error = %v", err)
		}

		if !verificationCodePattern.MatchString(code) {
			t.Fatalf("Code %q does not match XXXX-XXXX-XXXX over A-Z0-9", code)
		}
	}
}

func TestGenerateVerificationCodeVariety(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := GenerateVerificationCode()
		if err != nil {
			t.Fatalf("GenerateVerificationCode() error = %v", err)
		}
		if seen[code] {
			t.Fatalf("Duplicate code %q generated within 1000 draws", code)
		}
		seen[code] = true
	}
}
