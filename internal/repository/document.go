package repository

import (
	"context"
	"errors"
	"time"

	"github.com/hankosign/hankosign/internal/constant"
	"github.com/hankosign/hankosign/internal/model"
	"github.com/hankosign/hankosign/internal/util"
	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

type DocumentRepository struct {
	*baseRepository
	audit *AuditLogRepository
}

var ErrCodeCollision = errors.New("failed to generate a unique verification code")

// maxCodeAttempts bounds the retry loop on verification code collisions.
// The space is 36^12 so more than one retry is already unlikely.
const maxCodeAttempts = 5

// Create stores a document row with a freshly generated verification code.
// The caller is expected to have uploaded the file to object storage already.
func (dr *DocumentRepository) Create(ctx context.Context, tx *gorm.DB, doc model.Document) (*model.Document, error) {
	dr.logger.Debugf("Create document title: %s for userId: %s \n", doc.Title, doc.CreatedByID)

	db := dr.getDB(tx)

	var created *model.Document
	txErr := dr.withTx(db, func(tx2 *gorm.DB) error {
		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		for attempt := 0; attempt < maxCodeAttempts; attempt++ {
			code, err := util.GenerateVerificationCode()
			if err != nil {
				return err
			}

			var count int64
			if err := tx2.WithContext(ctx).Model(&model.Document{}).Where("verification_code = ?", code).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			doc.VerificationCode = code
			doc.Status = constant.DocumentStatusDraft
			if err := tx2.WithContext(ctx).Create(&doc).Error; err != nil {
				return err
			}
			created = &doc

			return dr.audit.Record(ctx, tx2, model.AuditLog{
				UserID:     doc.CreatedByID,
				Action:     constant.AuditDocumentUploaded,
				EntityType: "document",
				EntityID:   doc.ID,
				Details:    model.JSONMap{"title": doc.Title, "fileName": doc.FileName},
			})
		}

		return ErrCodeCollision
	})

	return created, txErr
}

func (dr DocumentRepository) GetById(ctx context.Context, tx *gorm.DB, documentId string) (*model.Document, error) {
	dr.logger.Debugf("Get document by id: %s \n", documentId)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var doc *model.Document
	if err := db.WithContext(ctx).Model(&model.Document{}).
		Preload("Signatures").
		Preload("Signatures.Hanko").
		Where(&model.Document{BaseModel: model.BaseModel{ID: documentId}}).
		First(&doc).Error; err != nil {
		return nil, err
	}

	return doc, nil
}

// GetOwned fetches a document scoped to its owner. A foreign document id
// reads as not found, other users' documents are never acknowledged.
func (dr DocumentRepository) GetOwned(ctx context.Context, tx *gorm.DB, documentId, userId string) (*model.Document, error) {
	dr.logger.Debugf("Get document by id: %s for userId: %s \n", documentId, userId)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var doc *model.Document
	if err := db.WithContext(ctx).Model(&model.Document{}).
		Preload("Signatures").
		Preload("Signatures.Hanko").
		Where("id = ? AND created_by_id = ?", documentId, userId).
		First(&doc).Error; err != nil {
		return nil, err
	}

	return doc, nil
}

func (dr DocumentRepository) GetByVerificationCode(ctx context.Context, tx *gorm.DB, code string) (*model.Document, error) {
	dr.logger.Debugf("Get document by verification code: %s \n", code)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var doc *model.Document
	if err := db.WithContext(ctx).Model(&model.Document{}).
		Preload("Signatures", func(db *gorm.DB) *gorm.DB {
			return db.Order("signatures.timestamp ASC")
		}).
		Preload("Signatures.Hanko").
		Preload("Signatures.User").
		Preload("CreatedBy").
		Where("verification_code = ?", code).
		First(&doc).Error; err != nil {
		return nil, err
	}

	return doc, nil
}

func (dr DocumentRepository) ListByOwner(ctx context.Context, tx *gorm.DB, userId string, status constant.DocumentStatus, page, pageSize uint) ([]model.Document, int64, error) {
	dr.logger.Debugf("List documents for userId: %s status: %s page: %d \n", userId, status, page)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Document{}).Where("created_by_id = ?", userId)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var docs []model.Document
	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Offset(int(offset)).Limit(int(pageSize)).Find(&docs).Error; err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

// UpdateStatus moves a document to a new status on behalf of its owner.
// COMPLETED also stamps completedAt.
func (dr *DocumentRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, documentId, userId string, status constant.DocumentStatus) (*model.Document, error) {
	dr.logger.Debugf("Update document status id: %s to %s \n", documentId, status)

	db := dr.getDB(tx)

	var updated *model.Document
	txErr := dr.withTx(db, func(tx2 *gorm.DB) error {
		doc, err := dr.GetOwned(ctx, tx2, documentId, userId)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		updates := map[string]any{"status": status}
		if status == constant.DocumentStatusCompleted {
			now := time.Now()
			updates["completed_at"] = now
			doc.CompletedAt = &now
		}

		if err := tx2.WithContext(ctx).Model(&model.Document{}).Where("id = ?", documentId).Updates(updates).Error; err != nil {
			return err
		}

		oldStatus := doc.Status
		doc.Status = status
		updated = doc

		return dr.audit.Record(ctx, tx2, model.AuditLog{
			UserID:     userId,
			Action:     constant.AuditDocumentStatusChanged,
			EntityType: "document",
			EntityID:   documentId,
			Details:    model.JSONMap{"from": oldStatus, "to": status},
		})
	})

	return updated, txErr
}

// Delete removes the database row and the stored file, returning the removed
// document. The S3 removal happens after the transaction commits, a dangling
// object is preferable to a dangling row.
func (dr *DocumentRepository) Delete(ctx context.Context, tx *gorm.DB, documentId, userId string, bucket string) (*model.Document, error) {
	dr.logger.Debugf("Delete document id: %s for userId: %s \n", documentId, userId)

	db := dr.getDB(tx)

	var deleted *model.Document
	txErr := dr.withTx(db, func(tx2 *gorm.DB) error {
		doc, err := dr.GetOwned(ctx, tx2, documentId, userId)
		if err != nil {
			return err
		}
		deleted = doc

		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		if err := tx2.WithContext(ctx).Delete(&model.Document{}, "id = ?", documentId).Error; err != nil {
			return err
		}

		return dr.audit.Record(ctx, tx2, model.AuditLog{
			UserID:     userId,
			Action:     constant.AuditDocumentDeleted,
			EntityType: "document",
			EntityID:   documentId,
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	if deleted.FileKey != "" {
		if err := dr.s3.RemoveObject(ctx, bucket, deleted.FileKey, minio.RemoveObjectOptions{}); err != nil {
			dr.logger.Errorf("Failed to remove document object %s: %v", deleted.FileKey, err)
		}
	}

	return deleted, nil
}
