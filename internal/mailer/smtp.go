package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/hankosign/hankosign/internal/util"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type SMTPMailer struct {
	fromEmail string
	fromName  string
	host      string
	port      int
	username  string
	password  string
	logger    *zap.SugaredLogger
}

func NewSMTPMailer(host string, port int, username, password, fromEmail string, logger *zap.SugaredLogger) *SMTPMailer {
	return &SMTPMailer{
		fromEmail: fromEmail,
		fromName:  util.GetAppName(),
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		logger:    logger,
	}
}

func (sm *SMTPMailer) Send(templateFile, toName, toEmail string, data any) (int, error) {
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		sm.logger.Errorw("failed to parse email template", "error", err, "templateFile", templateFile)
		return http.StatusInternalServerError, err
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		sm.logger.Errorw("failed to execute subject template", "error", err, "templateFile", templateFile)
		return http.StatusInternalServerError, err
	}

	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", data); err != nil {
		sm.logger.Errorw("failed to execute body template", "error", err, "templateFile", templateFile)
		return http.StatusInternalServerError, err
	}

	message := gomail.NewMessage()
	message.SetHeader("From", fmt.Sprintf("%s <%s>", sm.fromName, sm.fromEmail))
	message.SetHeader("To", toEmail)
	message.SetHeader("Subject", subject.String())
	message.SetBody("text/html", body.String())

	dialer := gomail.NewDialer(sm.host, sm.port, sm.username, sm.password)

	if err := dialer.DialAndSend(message); err != nil {
		sm.logger.Errorw("failed to send email", "error", err, "toEmail", toEmail, "templateFile", templateFile)
		return http.StatusInternalServerError, fmt.Errorf("failed to send email: %w", err)
	}

	sm.logger.Infow("email sent successfully", "toEmail", toEmail, "templateFile", templateFile)

	return http.StatusOK, nil
}
