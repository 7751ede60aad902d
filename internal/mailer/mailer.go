package mailer

import "embed"

const (
	MAX_RETRY = 3

	PASSWORD_RESET_TEMPLATE       = "password_reset.tmpl"
	CONTACT_SUPPORT_TEMPLATE      = "contact_support.tmpl"
	CONTACT_CONFIRMATION_TEMPLATE = "contact_confirmation.tmpl"
	APPROVAL_REQUEST_TEMPLATE     = "approval_request.tmpl"
	DOCUMENT_COMPLETED_TEMPLATE   = "document_completed.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, toName, toEmail string, data any) (int, error)
}
