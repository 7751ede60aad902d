package controller

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hankosign/hankosign/internal/constant"
	"github.com/hankosign/hankosign/internal/model"
	"github.com/hankosign/hankosign/internal/util"
	"gorm.io/gorm"
)

type HankoController struct {
	*baseController
}

const (
	hankoMinSize = 20
	hankoMaxSize = 500
)

func (hc HankoController) GetOwnHankos(ctx *gin.Context) {
	user, err := hc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	hankos, err := hc.app.Repository.Hanko.GetByUserId(ctx, nil, user.ID)
	if err != nil {
		hc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list hankos", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"hankos": hankos,
	})
}

func (hc HankoController) CreateHanko(ctx *gin.Context) {
	type Request struct {
		Name               string `json:"name" form:"name" binding:"required,strNotEmpty,cmax=50"`
		Type               string `json:"type" form:"type" binding:"required,oneof=MITOMEIN GINKOIN JITSUIN"`
		ImageData          string `json:"imageData" form:"imageData" binding:"required"`
		Font               string `json:"font" form:"font" binding:"omitempty,cmax=100"`
		Size               int    `json:"size" form:"size"`
		IsRegistered       bool   `json:"isRegistered" form:"isRegistered"`
		RegistrationNumber string `json:"registrationNumber" form:"registrationNumber" binding:"omitempty,cmax=100"`
	}
	var body Request

	user, err := hc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if len(body.ImageData) > constant.MaxHankoImageDataLength {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Image data too large",
			util.GenerateErrorMessages(fmt.Errorf("imageData must be at most %d characters", constant.MaxHankoImageDataLength), "imageData"), nil)
		return
	}

	if body.Size == 0 {
		body.Size = 60
	}
	if body.Size < hankoMinSize || body.Size > hankoMaxSize {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid size",
			util.GenerateErrorMessages(fmt.Errorf("size must be between %d and %d", hankoMinSize, hankoMaxSize), "size"), nil)
		return
	}

	hankoId := uuid.NewString()
	imageURL := ""

	// When the stamp image arrives as a base64 data URI, keep a rendered copy
	// in object storage next to the raw data.
	if raw, ok := decodeImageDataURI(body.ImageData); ok {
		objectKey := util.GetHankoKey(user.ID, hankoId)
		_, err := util.UploadFileToS3ByBytes(raw, &util.FileUploadOptions{
			ObjectKey:   objectKey,
			ContentType: "image/png",
			Bucket:      hc.app.Config.Minio.BUCKET,
			S3:          hc.app.S3,
		})
		if err != nil {
			hc.app.Logger.Errorf("Failed to upload hanko image: %v", err)
		} else {
			imageURL = objectKey
		}
	}

	hanko, err := hc.app.Repository.Hanko.Create(ctx, nil, model.Hanko{
		BaseModel:          model.BaseModel{ID: hankoId},
		UserID:             user.ID,
		Name:               body.Name,
		Type:               constant.HankoType(body.Type),
		ImageURL:           imageURL,
		ImageData:          body.ImageData,
		Font:               body.Font,
		Size:               body.Size,
		IsRegistered:       body.IsRegistered,
		RegistrationNumber: body.RegistrationNumber,
	})
	if err != nil {
		hc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create hanko", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseCreated(ctx, gin.H{
		"hanko": hanko,
	})
}

func (hc HankoController) DeleteHanko(ctx *gin.Context) {
	hankoId := ctx.Param("hankoId")

	user, err := hc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	// Deletion is scoped to the owner, a foreign hanko id is a plain 404.
	if err := hc.app.Repository.Hanko.Delete(ctx, nil, hankoId, user.ID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.ResponseFailed(ctx, http.StatusNotFound, "Hanko not found", util.GenerateErrorMessages(err, "hankoId"), nil)
		default:
			hc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete hanko", util.GenerateErrorMessages(err), nil)
		}
		return
	}

	util.ResponseSuccess(ctx, nil)
}

// decodeImageDataURI decodes "data:image/...;base64,...." payloads.
func decodeImageDataURI(dataURI string) ([]byte, bool) {
	if !strings.HasPrefix(dataURI, "data:image/") {
		return nil, false
	}

	_, encoded, found := strings.Cut(dataURI, ";base64,")
	if !found {
		return nil, false
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, false
	}

	return raw, true
}
