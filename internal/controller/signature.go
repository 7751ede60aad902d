package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hankosign/hankosign/internal/repository"
	"github.com/hankosign/hankosign/internal/util"
	"gorm.io/gorm"
)

type SignatureController struct {
	*baseController
}

func (sc SignatureController) SignDocument(ctx *gin.Context) {
	type Request struct {
		DocumentID string  `json:"documentId" form:"documentId" binding:"required,strNotEmpty"`
		HankoID    string  `json:"hankoId" form:"hankoId" binding:"required,strNotEmpty"`
		PositionX  float64 `json:"positionX" form:"positionX" binding:"gte=0"`
		PositionY  float64 `json:"positionY" form:"positionY" binding:"gte=0"`
		Page       int     `json:"page" form:"page" binding:"omitempty,gte=1"`
	}
	var body Request

	user, err := sc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	signature, doc, err := sc.app.Repository.Signature.SignDocument(ctx, nil, repository.SignDocumentParams{
		DocumentID: body.DocumentID,
		HankoID:    body.HankoID,
		UserID:     user.ID,
		PositionX:  body.PositionX,
		PositionY:  body.PositionY,
		Page:       body.Page,
		IPAddress:  ctx.ClientIP(),
		UserAgent:  ctx.Request.UserAgent(),
	})
	if err != nil {
		sc.respondSignError(ctx, err)
		return
	}

	sc.invalidateVerifyCache(ctx, doc.VerificationCode)

	util.ResponseCreated(ctx, gin.H{
		"signature": signature,
	})
}

// respondSignError maps signing failures to responses. A hanko that exists
// but belongs to someone else surfaces as the same not-found as an absent
// one, other users' hanko ids are never acknowledged.
func (sc SignatureController) respondSignError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		util.ResponseFailed(ctx, http.StatusNotFound, "Document or hanko not found", util.GenerateErrorMessages(err), nil)
	case errors.Is(err, repository.ErrDocumentNotSignable):
		util.ResponseFailed(ctx, http.StatusBadRequest, "Document can no longer be signed", util.GenerateErrorMessages(err, "documentId"), nil)
	default:
		sc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to sign document", util.GenerateErrorMessages(err), nil)
	}
}
