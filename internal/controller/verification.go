package controller

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hankosign/hankosign/internal/repository"
	"github.com/hankosign/hankosign/internal/util"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

type VerificationController struct {
	*baseController
}

const verifyCacheTTL = 60 * time.Second

var verificationCodePattern = regexp.MustCompile(`^[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

// verifyCacheKey is shared between the public lookup and the write paths
// that invalidate it.
func verifyCacheKey(code string) string {
	return "verify:" + code
}

// VerifyDocument is the public lookup by verification code. The response is
// the redacted projection and is cached briefly since codes are printed on
// paper and get hammered right after a document circulates.
func (vc VerificationController) VerifyDocument(ctx *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(ctx.Param("code")))

	if !verificationCodePattern.MatchString(code) {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid verification code", util.GenerateErrorMessages(errors.New("verification code must look like XXXX-XXXX-XXXX"), "code"), nil)
		return
	}

	cacheKey := verifyCacheKey(code)

	var cached repository.VerificationView
	if err := vc.app.Cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		util.ResponseSuccess(ctx, gin.H{
			"document": cached,
		})
		return
	}

	doc, err := vc.app.Repository.Document.GetByVerificationCode(ctx, nil, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "No document matches this code", util.GenerateErrorMessages(err, "code"), nil)
			return
		}
		vc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to verify document", util.GenerateErrorMessages(err), nil)
		return
	}

	view := repository.BuildVerificationView(doc)

	if err := vc.app.Cache.SetJSON(ctx, cacheKey, view, verifyCacheTTL); err != nil {
		vc.app.Logger.Debugf("Failed to cache verification view: %v", err)
	}

	util.ResponseSuccess(ctx, gin.H{
		"document": view,
	})
}

// VerifyDocumentQR renders a QR code pointing at the public verification page.
func (vc VerificationController) VerifyDocumentQR(ctx *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(ctx.Param("code")))

	if !verificationCodePattern.MatchString(code) {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid verification code", util.GenerateErrorMessages(errors.New("verification code must look like XXXX-XXXX-XXXX"), "code"), nil)
		return
	}

	verifyURL := vc.app.Config.FrontURL + "/verify/" + code

	png, err := qrcode.Encode(verifyURL, qrcode.Medium, 256)
	if err != nil {
		vc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to render QR code", util.GenerateErrorMessages(err), nil)
		return
	}

	ctx.Header("Cache-Control", "public, max-age=86400")
	ctx.Data(http.StatusOK, "image/png", png)
}
