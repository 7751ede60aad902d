package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hankosign/hankosign/internal/constant"
	"github.com/hankosign/hankosign/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SignatureRepository struct {
	*baseRepository
	audit *AuditLogRepository
}

var ErrDocumentNotSignable = errors.New("document can no longer be signed")

type SignDocumentParams struct {
	DocumentID string
	HankoID    string
	UserID     string
	PositionX  float64
	PositionY  float64
	Page       int
	IPAddress  string
	UserAgent  string
}

// SignDocument applies a hanko to a document. The status check and the
// signature insert run in one transaction with the document row locked, two
// concurrent signatures cannot race past a terminal status. The hanko lookup
// is scoped to the caller, a foreign hanko id reads as not found.
func (sr *SignatureRepository) SignDocument(ctx context.Context, tx *gorm.DB, params SignDocumentParams) (*model.Signature, *model.Document, error) {
	sr.logger.Debugf("Sign document id: %s with hanko: %s by userId: %s \n", params.DocumentID, params.HankoID, params.UserID)

	db := sr.getDB(tx)

	var created *model.Signature
	var signed *model.Document
	txErr := sr.withTx(db, func(tx2 *gorm.DB) error {
		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		var doc model.Document
		if err := tx2.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", params.DocumentID).First(&doc).Error; err != nil {
			return err
		}

		if !doc.Signable() {
			return fmt.Errorf("%w: status is %s", ErrDocumentNotSignable, doc.Status)
		}

		var hanko model.Hanko
		if err := tx2.WithContext(ctx).
			Where("id = ? AND user_id = ?", params.HankoID, params.UserID).
			First(&hanko).Error; err != nil {
			return err
		}

		if params.Page < 1 {
			params.Page = 1
		}

		signature := model.Signature{
			DocumentID: params.DocumentID,
			HankoID:    params.HankoID,
			UserID:     params.UserID,
			PositionX:  params.PositionX,
			PositionY:  params.PositionY,
			Page:       params.Page,
			Timestamp:  time.Now(),
			IPAddress:  params.IPAddress,
			UserAgent:  params.UserAgent,
			IsValid:    true,
		}
		if err := tx2.WithContext(ctx).Create(&signature).Error; err != nil {
			return err
		}
		created = &signature

		// First signature moves a fresh document into progress.
		if doc.Status == constant.DocumentStatusDraft || doc.Status == constant.DocumentStatusPending {
			if err := tx2.WithContext(ctx).Model(&model.Document{}).Where("id = ?", doc.ID).
				Update("status", constant.DocumentStatusInProgress).Error; err != nil {
				return err
			}
			doc.Status = constant.DocumentStatusInProgress
		}
		signed = &doc

		return sr.audit.Record(ctx, tx2, model.AuditLog{
			UserID:     params.UserID,
			Action:     constant.AuditDocumentSigned,
			EntityType: "document",
			EntityID:   params.DocumentID,
			Details:    model.JSONMap{"hankoId": params.HankoID, "page": params.Page},
		})
	})
	if txErr != nil {
		return nil, nil, txErr
	}

	return created, signed, nil
}

func (sr SignatureRepository) GetByDocumentId(ctx context.Context, tx *gorm.DB, documentId string) ([]model.Signature, error) {
	sr.logger.Debugf("Get signatures by documentId: %s \n", documentId)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var signatures []model.Signature
	if err := db.WithContext(ctx).Model(&model.Signature{}).
		Preload("Hanko").
		Preload("User").
		Where(&model.Signature{DocumentID: documentId}).
		Order("timestamp ASC").
		Find(&signatures).Error; err != nil {
		return nil, err
	}

	return signatures, nil
}
