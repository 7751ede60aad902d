package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hankosign/hankosign/internal/mailer"
	"github.com/hankosign/hankosign/internal/util"
)

type ContactController struct {
	*baseController
}

// SubmitContact forwards an inquiry to the support inbox and sends the sender
// a confirmation. Public, no auth.
func (cc ContactController) SubmitContact(ctx *gin.Context) {
	type Request struct {
		Name    string `json:"name" form:"name" binding:"required,strNotEmpty,cmax=100"`
		Email   string `json:"email" form:"email" binding:"required,email"`
		Company string `json:"company" form:"company" binding:"omitempty,cmax=200"`
		Subject string `json:"subject" form:"subject" binding:"required,strNotEmpty,cmax=200"`
		Message string `json:"message" form:"message" binding:"required,strNotEmpty,cmax=5000"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	supportVars := struct {
		Name    string
		Email   string
		Company string
		Subject string
		Message string
	}{
		Name:    body.Name,
		Email:   body.Email,
		Company: body.Company,
		Subject: body.Subject,
		Message: body.Message,
	}

	confirmationVars := struct {
		Name    string
		Subject string
	}{
		Name:    body.Name,
		Subject: body.Subject,
	}

	supportEmail := cc.app.Config.Mail.SUPPORT_EMAIL

	// Unlike the notification emails elsewhere, these sends are the whole
	// point of the endpoint, so a failure is the caller's problem too.
	if _, err := cc.app.Mailer.Send(mailer.CONTACT_SUPPORT_TEMPLATE, "Support", supportEmail, supportVars); err != nil {
		cc.app.Logger.Errorf("Failed to forward contact inquiry: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to send inquiry", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := cc.app.Mailer.Send(mailer.CONTACT_CONFIRMATION_TEMPLATE, body.Name, body.Email, confirmationVars); err != nil {
		cc.app.Logger.Errorf("Failed to send contact confirmation: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to send inquiry", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"message": "Your inquiry has been received",
	})
}
