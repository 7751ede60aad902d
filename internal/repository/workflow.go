package repository

import (
	"context"
	"errors"
	"time"

	"github.com/hankosign/hankosign/internal/constant"
	"github.com/hankosign/hankosign/internal/model"
	"gorm.io/gorm"
)

type WorkflowRepository struct {
	*baseRepository
	audit *AuditLogRepository
}

var (
	ErrWorkflowExists     = errors.New("document already has a workflow")
	ErrStepsNotSequential = errors.New("approval step orders must form a contiguous sequence starting at 1")
)

type ApprovalStep struct {
	ApproverID string
	Order      int
	DueDate    *time.Time
}

// validateStepOrders rejects step orders that are not a permutation of 1..N.
// Gaps would strand the later steps behind the sequential advance forever.
func validateStepOrders(steps []ApprovalStep) error {
	seen := make(map[int]bool, len(steps))
	for _, step := range steps {
		if step.Order < 1 || step.Order > len(steps) || seen[step.Order] {
			return ErrStepsNotSequential
		}
		seen[step.Order] = true
	}

	return nil
}

// CreateWithApprovals sets up an approval workflow for a document owned by
// userId. A DRAFT document moves to PENDING once a workflow is attached.
func (wr *WorkflowRepository) CreateWithApprovals(ctx context.Context, tx *gorm.DB, documentId, userId, name string, isSequential bool, steps []ApprovalStep, configuration model.JSONMap) (*model.Workflow, error) {
	wr.logger.Debugf("Create workflow for documentId: %s with %d steps \n", documentId, len(steps))

	if err := validateStepOrders(steps); err != nil {
		return nil, err
	}

	db := wr.getDB(tx)

	var created *model.Workflow
	txErr := wr.withTx(db, func(tx2 *gorm.DB) error {
		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		var doc model.Document
		if err := tx2.WithContext(ctx).
			Where("id = ? AND created_by_id = ?", documentId, userId).
			First(&doc).Error; err != nil {
			return err
		}
		if !doc.Signable() {
			return ErrDocumentNotSignable
		}

		var count int64
		if err := tx2.WithContext(ctx).Model(&model.Workflow{}).Where("document_id = ?", documentId).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrWorkflowExists
		}

		totalSteps := 0
		for _, step := range steps {
			if step.Order > totalSteps {
				totalSteps = step.Order
			}
		}

		workflow := model.Workflow{
			DocumentID:    documentId,
			Name:          name,
			CurrentStep:   1,
			TotalSteps:    totalSteps,
			IsSequential:  isSequential,
			Configuration: configuration,
		}
		if err := tx2.WithContext(ctx).Create(&workflow).Error; err != nil {
			return err
		}

		approvals := make([]model.Approval, 0, len(steps))
		for _, step := range steps {
			approvals = append(approvals, model.Approval{
				WorkflowID: workflow.ID,
				DocumentID: documentId,
				ApproverID: step.ApproverID,
				Order:      step.Order,
				Status:     constant.ApprovalStatusPending,
				DueDate:    step.DueDate,
			})
		}
		if err := tx2.WithContext(ctx).Create(&approvals).Error; err != nil {
			return err
		}
		workflow.Approvals = approvals

		if doc.Status == constant.DocumentStatusDraft {
			if err := tx2.WithContext(ctx).Model(&model.Document{}).Where("id = ?", documentId).
				Update("status", constant.DocumentStatusPending).Error; err != nil {
				return err
			}
		}

		created = &workflow

		return wr.audit.Record(ctx, tx2, model.AuditLog{
			UserID:     userId,
			Action:     constant.AuditWorkflowCreated,
			EntityType: "workflow",
			EntityID:   workflow.ID,
			Details:    model.JSONMap{"documentId": documentId, "totalSteps": totalSteps, "isSequential": isSequential},
		})
	})

	return created, txErr
}

func (wr WorkflowRepository) GetByDocumentId(ctx context.Context, tx *gorm.DB, documentId string) (*model.Workflow, error) {
	wr.logger.Debugf("Get workflow by documentId: %s \n", documentId)

	db := wr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var workflow *model.Workflow
	if err := db.WithContext(ctx).Model(&model.Workflow{}).
		Preload("Approvals", func(db *gorm.DB) *gorm.DB {
			return db.Order("approvals.step_order ASC")
		}).
		Where("document_id = ?", documentId).
		First(&workflow).Error; err != nil {
		return nil, err
	}

	return workflow, nil
}
