package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	appcontext "github.com/hankosign/hankosign/internal/app_context"
	"github.com/hankosign/hankosign/internal/config"
	"github.com/hankosign/hankosign/internal/mailer"
	"github.com/hankosign/hankosign/internal/util"
	"go.uber.org/zap"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("strNotEmpty", util.StrNotEmpty)
		_ = v.RegisterValidation("cmin", util.CustomMin)
		_ = v.RegisterValidation("cmax", util.CustomMax)
	}
}

type stubMailer struct {
	err  error
	sent []string
}

func (s *stubMailer) Send(templateFile, toName, toEmail string, data any) (int, error) {
	if s.err != nil {
		return -1, s.err
	}
	s.sent = append(s.sent, templateFile+"->"+toEmail)
	return 202, nil
}

func newContactController(m mailer.Client) ContactController {
	app := &appcontext.Application{
		Config: &config.Config{Mail: config.MailConfig{SUPPORT_EMAIL: "support@hankosign.jp"}},
		Logger: zap.NewNop().Sugar(),
		Mailer: m,
	}

	return ContactController{baseController: newBaseController(app)}
}

func postContact(t *testing.T, cc ContactController, body string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	ctx.Request = req

	cc.SubmitContact(ctx)

	return w
}

const contactBody = `{"name":"山田 太郎","email":"taro@example.com","company":"株式会社山田商事","subject":"請求書について","message":"添付の請求書についてご相談があります。"}`

func TestSubmitContact(t *testing.T) {
	stub := &stubMailer{}
	cc := newContactController(stub)

	w := postContact(t, cc, contactBody)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(stub.sent) != 2 {
		t.Fatalf("Expected 2 emails, got %d", len(stub.sent))
	}
	if stub.sent[0] != mailer.CONTACT_SUPPORT_TEMPLATE+"->support@hankosign.jp" {
		t.Errorf("Expected support inbox first, got %s", stub.sent[0])
	}
	if stub.sent[1] != mailer.CONTACT_CONFIRMATION_TEMPLATE+"->taro@example.com" {
		t.Errorf("Expected sender confirmation second, got %s", stub.sent[1])
	}
}

func TestSubmitContactMailFailure(t *testing.T) {
	stub := &stubMailer{err: errors.New("smtp: connection refused")}
	cc := newContactController(stub)

	w := postContact(t, cc, contactBody)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected mail failure to surface as 500, got %d", w.Code)
	}
}

func TestSubmitContactInvalidBody(t *testing.T) {
	stub := &stubMailer{}
	cc := newContactController(stub)

	w := postContact(t, cc, `{"name":"山田 太郎"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if len(stub.sent) != 0 {
		t.Errorf("Expected no emails for an invalid body, got %d", len(stub.sent))
	}
}
