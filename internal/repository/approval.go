package repository

import (
	"context"
	"errors"
	"time"

	"github.com/hankosign/hankosign/internal/constant"
	"github.com/hankosign/hankosign/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApprovalRepository struct {
	*baseRepository
	audit *AuditLogRepository
}

var (
	ErrNotApprover            = errors.New("approval is assigned to another user")
	ErrApprovalAlreadyDecided = errors.New("approval has already been decided")
	ErrNotYourTurn            = errors.New("earlier approval steps are still pending")
)

func (ar ApprovalRepository) ListByApprover(ctx context.Context, tx *gorm.DB, approverId string, status constant.ApprovalStatus, page, pageSize uint) ([]model.Approval, int64, error) {
	ar.logger.Debugf("List approvals for approverId: %s status: %s \n", approverId, status)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Approval{}).Where("approver_id = ?", approverId)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var approvals []model.Approval
	offset := (page - 1) * pageSize
	if err := query.Preload("Document").Order("created_at DESC").Offset(int(offset)).Limit(int(pageSize)).Find(&approvals).Error; err != nil {
		return nil, 0, err
	}

	return approvals, total, nil
}

func (ar ApprovalRepository) GetById(ctx context.Context, tx *gorm.DB, approvalId string) (*model.Approval, error) {
	ar.logger.Debugf("Get approval by id: %s \n", approvalId)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var approval *model.Approval
	if err := db.WithContext(ctx).Model(&model.Approval{}).
		Preload("Document").
		Where(&model.Approval{BaseModel: model.BaseModel{ID: approvalId}}).
		First(&approval).Error; err != nil {
		return nil, err
	}

	return approval, nil
}

type DecisionResult struct {
	Approval          *model.Approval
	Document          *model.Document
	DocumentCompleted bool
}

// Decide records an approve or reject decision. Approving the last pending
// step completes the document, rejecting any step rejects it. The workflow
// row is locked for the duration so concurrent decisions serialize.
func (ar *ApprovalRepository) Decide(ctx context.Context, tx *gorm.DB, approvalId, approverId string, approve bool, comment string) (*DecisionResult, error) {
	ar.logger.Debugf("Decide approval id: %s approve: %t \n", approvalId, approve)

	db := ar.getDB(tx)

	result := &DecisionResult{}
	txErr := ar.withTx(db, func(tx2 *gorm.DB) error {
		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		var approval model.Approval
		if err := tx2.WithContext(ctx).Where("id = ?", approvalId).First(&approval).Error; err != nil {
			return err
		}

		if approval.ApproverID != approverId {
			return ErrNotApprover
		}
		if approval.Status != constant.ApprovalStatusPending {
			return ErrApprovalAlreadyDecided
		}

		var workflow model.Workflow
		if err := tx2.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", approval.WorkflowID).First(&workflow).Error; err != nil {
			return err
		}

		if workflow.IsSequential && approval.Order > workflow.CurrentStep {
			return ErrNotYourTurn
		}

		status := constant.ApprovalStatusApproved
		if !approve {
			status = constant.ApprovalStatusRejected
		}

		if err := tx2.WithContext(ctx).Model(&model.Approval{}).Where("id = ?", approvalId).Updates(map[string]any{
			"status":  status,
			"comment": comment,
		}).Error; err != nil {
			return err
		}
		approval.Status = status
		approval.Comment = comment
		result.Approval = &approval

		var doc model.Document
		if err := tx2.WithContext(ctx).Where("id = ?", approval.DocumentID).First(&doc).Error; err != nil {
			return err
		}

		if !approve {
			if err := tx2.WithContext(ctx).Model(&model.Document{}).Where("id = ?", doc.ID).
				Update("status", constant.DocumentStatusRejected).Error; err != nil {
				return err
			}
			doc.Status = constant.DocumentStatusRejected
		} else {
			var pending int64
			if err := tx2.WithContext(ctx).Model(&model.Approval{}).
				Where("workflow_id = ? AND status = ?", workflow.ID, constant.ApprovalStatusPending).
				Count(&pending).Error; err != nil {
				return err
			}

			if pending == 0 {
				now := time.Now()
				if err := tx2.WithContext(ctx).Model(&model.Document{}).Where("id = ?", doc.ID).Updates(map[string]any{
					"status":       constant.DocumentStatusCompleted,
					"completed_at": now,
				}).Error; err != nil {
					return err
				}
				doc.Status = constant.DocumentStatusCompleted
				doc.CompletedAt = &now
				result.DocumentCompleted = true
			} else if workflow.IsSequential && approval.Order == workflow.CurrentStep {
				if err := tx2.WithContext(ctx).Model(&model.Workflow{}).Where("id = ?", workflow.ID).
					Update("current_step", workflow.CurrentStep+1).Error; err != nil {
					return err
				}
			}
		}
		result.Document = &doc

		return ar.audit.Record(ctx, tx2, model.AuditLog{
			UserID:     approverId,
			Action:     constant.AuditApprovalDecided,
			EntityType: "approval",
			EntityID:   approvalId,
			Details:    model.JSONMap{"documentId": approval.DocumentID, "status": status, "comment": comment},
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	return result, nil
}
