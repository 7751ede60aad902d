package util

import (
	"crypto/sha256"
	"encoding/hex"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

func GenerateNChar(n int) (string, error) {
	id, err := gonanoid.New(n)
	if err != nil {
		return "", err
	}
	return id, nil
}

// HashToken returns the hex SHA-256 of a token. Reset tokens are stored hashed,
// never raw.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
