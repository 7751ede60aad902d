package util

import (
	"strings"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"contract.pdf", "contract.pdf"},
		{"請求書 2024.pdf", "____2024.pdf"},
		{"a/b\\c.pdf", "a_b_c.pdf"},
		{"report-v2.final.docx", "report-v2.final.docx"},
	}

	for _, tt := range tests {
		if got := SanitizeFileName(tt.in); got != tt.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAddUniquePrefixToFileName(t *testing.T) {
	filename := "testfile.txt"
	result := AddUniquePrefixToFileName(filename)

	if !strings.HasSuffix(result, "_testfile.txt") {
		t.Errorf("Expected filename to have unique prefix, got %s", result)
	}

	prefix := strings.Split(result, "_")[0]
	if len(prefix) == 0 {
		t.Errorf("Expected a non-empty unique prefix, got %s", prefix)
	}
}

func TestGetDocumentKey(t *testing.T) {
	key := GetDocumentKey("user-1", "my contract.pdf")

	if !strings.HasPrefix(key, "documents/user-1/") {
		t.Errorf("Expected key namespaced by uploader, got %s", key)
	}
	if !strings.HasSuffix(key, "-my_contract.pdf") {
		t.Errorf("Expected sanitized file name suffix, got %s", key)
	}
}

func TestGetHankoKey(t *testing.T) {
	if got := GetHankoKey("user-1", "hanko-9"); got != "hankos/user-1/hanko-9.png" {
		t.Errorf("GetHankoKey() = %q", got)
	}
}
