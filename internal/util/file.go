package util

import (
	"fmt"
	"regexp"
	"time"
)

var unsafeFileNameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// SanitizeFileName strips anything outside [a-zA-Z0-9.-] so user-supplied
// names are safe as object-storage keys.
func SanitizeFileName(fileName string) string {
	return unsafeFileNameChars.ReplaceAllString(fileName, "_")
}

// Example output for "ex.txt": "21313123123_ex.txt"
func AddUniquePrefixToFileName(fileName string) string {
	uniquePrefix := fmt.Sprintf("%d", time.Now().UnixNano())
	return fmt.Sprintf("%s_%s", uniquePrefix, fileName)
}

// GetDocumentKey namespaces an uploaded document under its uploader.
// Example: documents/123/1700000000000-contract.pdf
func GetDocumentKey(userID, fileName string) string {
	return fmt.Sprintf("documents/%s/%d-%s", userID, time.Now().UnixMilli(), SanitizeFileName(fileName))
}

// GetHankoKey is the storage key of a hanko stamp image.
func GetHankoKey(userID, hankoID string) string {
	return fmt.Sprintf("hankos/%s/%s.png", userID, hankoID)
}
