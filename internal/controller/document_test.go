package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TestRespondDocumentError(t *testing.T) {
	dc := DocumentController{baseController: newTestController()}

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		// Owner-scoped queries surface another user's document as
		// record-not-found, so a foreign id gets this same 404.
		{"missing or foreign document", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"unexpected failure", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)

			dc.respondDocumentError(ctx, tt.err)

			if w.Code != tt.wantCode {
				t.Errorf("Expected status %d, got %d", tt.wantCode, w.Code)
			}
		})
	}
}
