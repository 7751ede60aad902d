package repository

import (
	"context"

	"github.com/hankosign/hankosign/internal/constant"
	"github.com/hankosign/hankosign/internal/model"
	"gorm.io/gorm"
)

type AuditLogRepository struct {
	*baseRepository
}

// Record appends an audit entry.
func (ar *AuditLogRepository) Record(ctx context.Context, tx *gorm.DB, entry model.AuditLog) error {
	ar.logger.Debugf("Record audit log action: %s entity: %s/%s \n", entry.Action, entry.EntityType, entry.EntityID)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(&entry).Error; err != nil {
		ar.logger.Errorf("Failed to record audit log: %v", err)
		return err
	}

	return nil
}

type AuditLogFilter struct {
	UserID     string
	Action     constant.AuditAction
	EntityType string
}

func (ar AuditLogRepository) List(ctx context.Context, tx *gorm.DB, filter AuditLogFilter, page, pageSize uint) ([]model.AuditLog, int64, error) {
	ar.logger.Debugf("List audit logs filter: %+v page: %d \n", filter, page)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.AuditLog{})
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []model.AuditLog
	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Offset(int(offset)).Limit(int(pageSize)).Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
