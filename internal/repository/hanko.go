package repository

import (
	"context"

	"github.com/hankosign/hankosign/internal/constant"
	"github.com/hankosign/hankosign/internal/model"
	"gorm.io/gorm"
)

type HankoRepository struct {
	*baseRepository
	audit *AuditLogRepository
}

func (hr *HankoRepository) Create(ctx context.Context, tx *gorm.DB, hanko model.Hanko) (*model.Hanko, error) {
	hr.logger.Debugf("Create hanko for userId: %s name: %s \n", hanko.UserID, hanko.Name)

	db := hr.getDB(tx)

	var created *model.Hanko
	txErr := hr.withTx(db, func(tx2 *gorm.DB) error {
		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		if err := tx2.WithContext(ctx).Create(&hanko).Error; err != nil {
			return err
		}
		created = &hanko

		return hr.audit.Record(ctx, tx2, model.AuditLog{
			UserID:     hanko.UserID,
			Action:     constant.AuditHankoCreated,
			EntityType: "hanko",
			EntityID:   hanko.ID,
			Details:    model.JSONMap{"name": hanko.Name, "type": hanko.Type},
		})
	})

	return created, txErr
}

func (hr HankoRepository) GetById(ctx context.Context, tx *gorm.DB, hankoId string) (*model.Hanko, error) {
	hr.logger.Debugf("Get hanko by id: %s \n", hankoId)

	db := hr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var hanko *model.Hanko
	if err := db.WithContext(ctx).Model(&model.Hanko{}).Where(&model.Hanko{BaseModel: model.BaseModel{ID: hankoId}}).First(&hanko).Error; err != nil {
		return nil, err
	}

	return hanko, nil
}

func (hr HankoRepository) GetByUserId(ctx context.Context, tx *gorm.DB, userId string) ([]model.Hanko, error) {
	hr.logger.Debugf("Get hankos by userId: %s \n", userId)

	db := hr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var hankos []model.Hanko
	if err := db.WithContext(ctx).Model(&model.Hanko{}).Where(&model.Hanko{UserID: userId}).Order("created_at DESC").Find(&hankos).Error; err != nil {
		return nil, err
	}

	return hankos, nil
}

// Delete removes a hanko owned by userId. The lookup is scoped to the owner
// so a foreign hanko id reads as not found. Existing signatures keep their
// snapshot of the stamp, only the reusable record goes away.
func (hr *HankoRepository) Delete(ctx context.Context, tx *gorm.DB, hankoId, userId string) error {
	hr.logger.Debugf("Delete hanko id: %s for userId: %s \n", hankoId, userId)

	db := hr.getDB(tx)

	return hr.withTx(db, func(tx2 *gorm.DB) error {
		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		var hanko model.Hanko
		if err := tx2.WithContext(ctx).
			Where("id = ? AND user_id = ?", hankoId, userId).
			First(&hanko).Error; err != nil {
			return err
		}

		if err := tx2.WithContext(ctx).Delete(&model.Hanko{}, "id = ?", hankoId).Error; err != nil {
			return err
		}

		return hr.audit.Record(ctx, tx2, model.AuditLog{
			UserID:     userId,
			Action:     constant.AuditHankoDeleted,
			EntityType: "hanko",
			EntityID:   hankoId,
		})
	})
}
