package model

import (
	"testing"

	"github.com/hankosign/hankosign/internal/constant"
)

func TestDocumentSignable(t *testing.T) {
	tests := []struct {
		status constant.DocumentStatus
		want   bool
	}{
		{constant.DocumentStatusDraft, true},
		{constant.DocumentStatusPending, true},
		{constant.DocumentStatusInProgress, true},
		{constant.DocumentStatusCompleted, false},
		{constant.DocumentStatusRejected, false},
		{constant.DocumentStatusArchived, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			doc := Document{Status: tt.status}
			if got := doc.Signable(); got != tt.want {
				t.Errorf("Signable() with status %s = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}
