package mailer

import (
	"errors"
	"strings"
	"testing"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

type stubSender struct {
	failures int
	calls    int
}

func (s *stubSender) Send(email *mail.SGMailV3) (*rest.Response, error) {
	s.calls++
	if s.calls <= s.failures {
		return nil, errors.New("connection reset by peer")
	}

	return &rest.Response{StatusCode: 202}, nil
}

func newStubbedSendGrid(s sendGridSender) *SendGridMailer {
	return &SendGridMailer{
		fromEmail: "noreply@hankosign.jp",
		client:    s,
		isSandBox: true,
		logger:    zap.NewNop().Sugar(),
	}
}

var resetVars = struct {
	Name             string
	ResetURL         string
	ExpiresInMinutes int
}{
	Name:             "山田 太郎",
	ResetURL:         "https://hankosign.jp/reset-password?token=abc",
	ExpiresInMinutes: 60,
}

func TestSendGridMailerRetriesThenSucceeds(t *testing.T) {
	sender := &stubSender{failures: 1}
	m := newStubbedSendGrid(sender)

	status, err := m.Send(PASSWORD_RESET_TEMPLATE, "山田 太郎", "taro@example.com", resetVars)
	if err != nil {
		t.Fatalf("Expected retry to recover, got error: %v", err)
	}
	if status != 202 {
		t.Errorf("Expected status 202, got %d", status)
	}
	if sender.calls != 2 {
		t.Errorf("Expected 2 attempts, got %d", sender.calls)
	}
}

func TestSendGridMailerReportsExhaustedRetries(t *testing.T) {
	sender := &stubSender{failures: MAX_RETRY}
	m := newStubbedSendGrid(sender)

	status, err := m.Send(PASSWORD_RESET_TEMPLATE, "山田 太郎", "taro@example.com", resetVars)
	if err == nil {
		t.Fatal("Expected an error after exhausting retries")
	}
	if !strings.Contains(err.Error(), "connection reset by peer") {
		t.Errorf("Expected the underlying send error in the message, got %v", err)
	}
	if status != -1 {
		t.Errorf("Expected status -1, got %d", status)
	}
	if sender.calls != MAX_RETRY {
		t.Errorf("Expected %d attempts, got %d", MAX_RETRY, sender.calls)
	}
}
