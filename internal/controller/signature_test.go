package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	appcontext "github.com/hankosign/hankosign/internal/app_context"
	"github.com/hankosign/hankosign/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestController() *baseController {
	return newBaseController(&appcontext.Application{Logger: zap.NewNop().Sugar()})
}

func TestRespondSignError(t *testing.T) {
	sc := SignatureController{baseController: newTestController()}

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		// A hanko owned by someone else reads as record-not-found, the
		// response must be identical to a hanko that does not exist.
		{"missing or foreign document or hanko", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"terminal status", fmt.Errorf("%w: status is COMPLETED", repository.ErrDocumentNotSignable), http.StatusBadRequest},
		{"unexpected failure", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)

			sc.respondSignError(ctx, tt.err)

			if w.Code != tt.wantCode {
				t.Errorf("Expected status %d, got %d", tt.wantCode, w.Code)
			}
		})
	}
}
