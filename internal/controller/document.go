package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hankosign/hankosign/internal/constant"
	"github.com/hankosign/hankosign/internal/model"
	"github.com/hankosign/hankosign/internal/pdf"
	"github.com/hankosign/hankosign/internal/util"
	"gorm.io/gorm"
)

type DocumentController struct {
	*baseController
}

const (
	ErrDocumentFileRequired    = "document file is required"
	ErrDocumentFileTooLarge    = "document file must be at most 20MB"
	ErrDocumentTypeUnsupported = "document file type is not supported"
	ErrDocumentPdfInvalid      = "document file is not a valid pdf"

	downloadURLExpiry = 15 * time.Minute
)

func (dc DocumentController) UploadDocument(ctx *gin.Context) {
	type Request struct {
		Title        string `json:"title" form:"title" binding:"required,strNotEmpty,cmax=200"`
		Description  string `json:"description" form:"description" binding:"omitempty,cmax=2000"`
		TemplateType string `json:"templateType" form:"templateType" binding:"omitempty,cmax=100"`
	}
	var body Request

	user, err := dc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "No document file uploaded", util.GenerateErrorMessages(errors.New(ErrDocumentFileRequired), "file"), nil)
		return
	}

	if fileHeader.Size > constant.MaxDocumentFileSize {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Document file too large", util.GenerateErrorMessages(errors.New(ErrDocumentFileTooLarge), "file"), nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !slices.Contains(constant.AllowedDocumentMimeTypes, mimeType) {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Unsupported document type", util.GenerateErrorMessages(errors.New(ErrDocumentTypeUnsupported), "file"), nil)
		return
	}

	pageCount := 0
	if mimeType == "application/pdf" {
		src, err := fileHeader.Open()
		if err != nil {
			dc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to read document file", util.GenerateErrorMessages(err), nil)
			return
		}
		raw, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			dc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to read document file", util.GenerateErrorMessages(err), nil)
			return
		}

		pageCount, err = pdf.PageCount(raw)
		if err != nil {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid document file", util.GenerateErrorMessages(errors.New(ErrDocumentPdfInvalid), "file"), nil)
			return
		}
	}

	objectKey := util.GetDocumentKey(user.ID, fileHeader.Filename)
	info, err := util.UploadFileToS3ByFileHeader(fileHeader, &util.FileUploadOptions{
		ObjectKey:   objectKey,
		ContentType: mimeType,
		Bucket:      dc.app.Config.Minio.BUCKET,
		S3:          dc.app.S3,
	})
	if err != nil {
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to store document file", util.GenerateErrorMessages(err), nil)
		return
	}

	doc, err := dc.app.Repository.Document.Create(ctx, nil, model.Document{
		Title:        body.Title,
		Description:  body.Description,
		TemplateType: body.TemplateType,
		FileURL:      fmt.Sprintf("%s/%s", info.Bucket, info.Key),
		FileKey:      info.Key,
		FileName:     fileHeader.Filename,
		FileSize:     fileHeader.Size,
		MimeType:     mimeType,
		PageCount:    pageCount,
		CreatedByID:  user.ID,
	})
	if err != nil {
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create document", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseCreated(ctx, gin.H{
		"document": doc,
	})
}

func (dc DocumentController) GetOwnDocuments(ctx *gin.Context) {
	user, err := dc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	page, pageSize := readPagination(ctx)

	status := constant.DocumentStatus(ctx.Query("status"))
	if status != "" && !status.Valid() {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid status filter", util.GenerateErrorMessages(fmt.Errorf("unknown status %s", status), "status"), nil)
		return
	}

	docs, total, err := dc.app.Repository.Document.ListByOwner(ctx, nil, user.ID, status, page, pageSize)
	if err != nil {
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list documents", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"documents": docs,
		"total":     total,
		"page":      page,
		"pageSize":  pageSize,
		"totalPage": util.CalculateTotalPage(total, pageSize),
	})
}

func (dc DocumentController) GetDocumentById(ctx *gin.Context) {
	documentId := ctx.Param("documentId")

	user, err := dc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	doc, err := dc.app.Repository.Document.GetOwned(ctx, nil, documentId, user.ID)
	if err != nil {
		dc.respondDocumentError(ctx, err)
		return
	}

	// A short-lived download link, the stored file is never public.
	downloadURL, err := util.GetPresignedURL(ctx, dc.app.S3, dc.app.Config.Minio.BUCKET, doc.FileKey, downloadURLExpiry)
	if err != nil {
		dc.app.Logger.Errorf("Failed to presign document %s: %v", doc.ID, err)
		downloadURL = ""
	}

	util.ResponseSuccess(ctx, gin.H{
		"document":    doc,
		"downloadUrl": downloadURL,
	})
}

func (dc DocumentController) UpdateDocumentStatus(ctx *gin.Context) {
	type Request struct {
		Status string `json:"status" form:"status" binding:"required,oneof=DRAFT PENDING IN_PROGRESS COMPLETED REJECTED ARCHIVED"`
	}
	var body Request

	documentId := ctx.Param("documentId")

	user, err := dc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	doc, err := dc.app.Repository.Document.UpdateStatus(ctx, nil, documentId, user.ID, constant.DocumentStatus(body.Status))
	if err != nil {
		dc.respondDocumentError(ctx, err)
		return
	}

	dc.invalidateVerifyCache(ctx, doc.VerificationCode)

	util.ResponseSuccess(ctx, gin.H{
		"document": doc,
	})
}

func (dc DocumentController) DeleteDocument(ctx *gin.Context) {
	documentId := ctx.Param("documentId")

	user, err := dc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	doc, err := dc.app.Repository.Document.Delete(ctx, nil, documentId, user.ID, dc.app.Config.Minio.BUCKET)
	if err != nil {
		dc.respondDocumentError(ctx, err)
		return
	}

	dc.invalidateVerifyCache(ctx, doc.VerificationCode)

	util.ResponseSuccess(ctx, nil)
}

// respondDocumentError maps repository failures to responses. Documents owned
// by someone else come back from the repository as not found, so there is no
// ownership branch to leak through.
func (dc DocumentController) respondDocumentError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		util.ResponseFailed(ctx, http.StatusNotFound, "Document not found", util.GenerateErrorMessages(err, "documentId"), nil)
	default:
		dc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to process document", util.GenerateErrorMessages(err), nil)
	}
}

// readPagination parses page and pageSize query params with defaults.
func readPagination(ctx *gin.Context) (uint, uint) {
	page, err := strconv.ParseUint(ctx.DefaultQuery("page", "1"), 10, 32)
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.ParseUint(ctx.DefaultQuery("pageSize", strconv.Itoa(int(constant.DefaultPageSize))), 10, 32)
	if err != nil || pageSize < 1 {
		pageSize = uint64(constant.DefaultPageSize)
	}
	if pageSize > uint64(constant.MaxPageSize) {
		pageSize = uint64(constant.MaxPageSize)
	}

	return uint(page), uint(pageSize)
}
