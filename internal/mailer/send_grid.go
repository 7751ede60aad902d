package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/hankosign/hankosign/internal/util"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// sendGridSender is the slice of *sendgrid.Client the mailer needs.
type sendGridSender interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

type SendGridMailer struct {
	fromEmail string
	client    sendGridSender
	isSandBox bool
	logger    *zap.SugaredLogger
}

func NewSendgrid(apiKey string, fromEmail string, isProduction bool, logger *zap.SugaredLogger) *SendGridMailer {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("development")
	}

	client := sendgrid.NewSendClient(apiKey)

	return &SendGridMailer{
		fromEmail: fromEmail,
		client:    client,
		// Sandbox mode is only used to validate your request. The email will never be delivered while this feature is enabled!
		isSandBox: !isProduction,
		logger:    logger,
	}
}

// Data is the struct whose fields the template references.
//
//	vars := struct {
//		Name     string
//		ResetURL string
//	}{
//		Name:     user.Name,
//		ResetURL: resetURL,
//	}
//	status, err := mail.Send(mailer.PASSWORD_RESET_TEMPLATE, user.Name, user.Email, vars)
func (m SendGridMailer) Send(templateFile, toName, toEmail string, data any) (int, error) {
	from := mail.NewEmail(util.GetAppName(), m.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		m.logger.Errorf("Error occurred during mail template parsing, error: %v", err)
		return -1, err
	}

	subject := new(bytes.Buffer)
	err = tmpl.ExecuteTemplate(subject, "subject", data)
	if err != nil {
		m.logger.Errorf("Error occurred during extracting subject from mail template, error: %v", err)
		return -1, err
	}

	body := new(bytes.Buffer)
	err = tmpl.ExecuteTemplate(body, "body", data)
	if err != nil {
		m.logger.Errorf("Error occurred during extracting body from mail template, error: %v", err)
		return -1, err
	}

	message := mail.NewSingleEmail(from, subject.String(), to, "", body.String())

	message.SetMailSettings(&mail.MailSettings{
		SandboxMode: &mail.Setting{
			Enable: &m.isSandBox,
		},
	})

	var retryErr error
	for i := 0; i < MAX_RETRY; i++ {
		response, err := m.client.Send(message)
		if err != nil {
			retryErr = err
			// exponential backoff
			time.Sleep(time.Second * time.Duration(i+1))
			continue
		}

		return response.StatusCode, nil
	}

	m.logger.Errorf("Failed to send email after %d attempt, error: %v", MAX_RETRY, retryErr)

	return -1, fmt.Errorf("failed to send email after %d attempt, error: %v", MAX_RETRY, retryErr)
}
