package controller

import (
	"encoding/base64"
	"testing"
)

func TestDecodeImageDataURI(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	valid := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)

	raw, ok := decodeImageDataURI(valid)
	if !ok {
		t.Fatal("Expected valid data URI to decode")
	}
	if string(raw) != string(png) {
		t.Errorf("Expected decoded bytes %v, got %v", png, raw)
	}

	tests := []struct {
		name string
		in   string
	}{
		{"not a data uri", "https://example.com/stamp.png"},
		{"missing base64 marker", "data:image/png,rawdata"},
		{"wrong media type", "data:text/html;base64,PGI+"},
		{"broken base64", "data:image/png;base64,%%%%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := decodeImageDataURI(tt.in); ok {
				t.Errorf("Expected %q to be rejected", tt.in)
			}
		})
	}
}
