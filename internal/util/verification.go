package util

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Alphabet for verification codes. Uppercase letters and digits only so codes
// survive being read aloud or printed on stamped paper.
const verificationCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	verificationCodeLength    = 12
	verificationCodeGroupSize = 4
)

// GenerateVerificationCode returns a public document code of the form
// XXXX-XXXX-XXXX drawn from A-Z0-9.
func GenerateVerificationCode() (string, error) {
	buf := make([]byte, verificationCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	var sb strings.Builder
	for i, b := range buf {
		if i > 0 && i%verificationCodeGroupSize == 0 {
			sb.WriteByte('-')
		}
		sb.WriteByte(verificationCodeAlphabet[int(b)%len(verificationCodeAlphabet)])
	}

	return sb.String(), nil
}
