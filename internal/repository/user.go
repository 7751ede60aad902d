package repository

import (
	"context"
	"errors"
	"time"

	"github.com/hankosign/hankosign/internal/constant"
	"github.com/hankosign/hankosign/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	*baseRepository
	audit *AuditLogRepository
}

func (ur UserRepository) GetById(ctx context.Context, tx *gorm.DB, userId string) (*model.User, error) {
	ur.logger.Debugf("Get user by id: %s \n", userId)

	db := ur.getDB(tx)
	var user *model.User

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Where(&model.User{BaseModel: model.BaseModel{ID: userId}}).First(&user).Error; err != nil {
		return user, err
	}

	return user, nil
}

func (ur UserRepository) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*model.User, error) {
	ur.logger.Debugf("Get user by email: %s \n", email)

	db := ur.getDB(tx)
	var user *model.User

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Where(&model.User{Email: email}).First(&user).Error; err != nil {
		return user, err
	}

	return user, nil
}

var ErrEmailTaken = errors.New("email is already registered")

// newUserRow shapes the insert row for registration. Profile and company
// fields pass through, the role is always USER and no caller-supplied id or
// reset token state survives.
func newUserRow(u model.User) model.User {
	return model.User{
		Email:           u.Email,
		Password:        u.Password,
		Name:            u.Name,
		NameKana:        u.NameKana,
		CompanyName:     u.CompanyName,
		CorporateNumber: u.CorporateNumber,
		Department:      u.Department,
		Position:        u.Position,
		Role:            constant.RoleUser,
	}
}

// Create registers a new user, failing when the email is already taken. The
// email lookup relies on citext so the uniqueness check is case-insensitive.
func (ur *UserRepository) Create(ctx context.Context, tx *gorm.DB, newUser model.User) (*model.User, error) {
	ur.logger.Debugf("Create user with email: %s \n", newUser.Email)

	db := ur.getDB(tx)

	var created *model.User
	txErr := ur.withTx(db, func(tx2 *gorm.DB) error {
		_, err := ur.GetByEmail(ctx, tx2, newUser.Email)
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		user := newUserRow(newUser)
		if err := tx2.WithContext(ctx).Create(&user).Error; err != nil {
			return err
		}

		created = &user
		return nil
	})

	return created, txErr
}

func (ur *UserRepository) UpdateProfile(ctx context.Context, tx *gorm.DB, userId string, name, nameKana string) error {
	ur.logger.Debugf("Update profile for userId: %s \n", userId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.User{}).Where(&model.User{BaseModel: model.BaseModel{ID: userId}}).Updates(map[string]any{
		"name":      name,
		"name_kana": nameKana,
	}).Error
}

func (ur *UserRepository) UpdateCompanyInfo(ctx context.Context, tx *gorm.DB, userId string, companyName, corporateNumber, department, position string) error {
	ur.logger.Debugf("Update company info for userId: %s \n", userId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.User{}).Where(&model.User{BaseModel: model.BaseModel{ID: userId}}).Updates(map[string]any{
		"company_name":     companyName,
		"corporate_number": corporateNumber,
		"department":       department,
		"position":         position,
	}).Error
}

func (ur *UserRepository) UpdatePassword(ctx context.Context, tx *gorm.DB, userId string, hashedPassword string) error {
	ur.logger.Debugf("Update password for userId: %s \n", userId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.User{}).Where(&model.User{BaseModel: model.BaseModel{ID: userId}}).Update("password", hashedPassword).Error
}

func (ur *UserRepository) UpdatePreferences(ctx context.Context, tx *gorm.DB, userId string, preferences model.JSONMap) error {
	ur.logger.Debugf("Update preferences for userId: %s \n", userId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.User{}).Where(&model.User{BaseModel: model.BaseModel{ID: userId}}).Update("preferences", preferences).Error
}

// UpdateRole changes a user's role and records the audit entry in the same
// transaction, a role change without its trail never commits.
func (ur *UserRepository) UpdateRole(ctx context.Context, tx *gorm.DB, actorId, userId string, from, to constant.UserRole) error {
	ur.logger.Debugf("Update role for userId: %s to %s \n", userId, to)

	db := ur.getDB(tx)

	return ur.withTx(db, func(tx2 *gorm.DB) error {
		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		if err := tx2.WithContext(ctx).Model(&model.User{}).Where(&model.User{BaseModel: model.BaseModel{ID: userId}}).Update("role", to).Error; err != nil {
			return err
		}

		return ur.audit.Record(ctx, tx2, model.AuditLog{
			UserID:     actorId,
			Action:     constant.AuditRoleChanged,
			EntityType: "user",
			EntityID:   userId,
			Details:    model.JSONMap{"from": from, "to": to},
		})
	})
}

func (ur UserRepository) List(ctx context.Context, tx *gorm.DB, page, pageSize uint) ([]model.User, int64, error) {
	ur.logger.Debugf("List users page: %d pageSize: %d \n", page, pageSize)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var users []model.User
	var total int64

	query := db.WithContext(ctx).Model(&model.User{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Offset(int(offset)).Limit(int(pageSize)).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// SetResetToken stores the hash of a password reset token with its expiry.
// The plain token never touches the database.
func (ur *UserRepository) SetResetToken(ctx context.Context, tx *gorm.DB, userId string, tokenHash string, expiry time.Time) error {
	ur.logger.Debugf("Set reset token for userId: %s \n", userId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.User{}).Where(&model.User{BaseModel: model.BaseModel{ID: userId}}).Updates(map[string]any{
		"reset_token_hash":   tokenHash,
		"reset_token_expiry": expiry,
	}).Error
}

var ErrResetTokenInvalid = errors.New("reset token is invalid or expired")

func (ur UserRepository) GetByResetTokenHash(ctx context.Context, tx *gorm.DB, tokenHash string) (*model.User, error) {
	ur.logger.Debug("Get user by reset token hash \n")

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var user *model.User
	err := db.WithContext(ctx).Model(&model.User{}).
		Where("reset_token_hash = ? AND reset_token_expiry > ?", tokenHash, time.Now()).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResetTokenInvalid
		}
		return nil, err
	}

	return user, nil
}

// ResetPassword redeems a reset token, it swaps the password and clears the
// token state in one transaction so a token cannot be replayed.
func (ur *UserRepository) ResetPassword(ctx context.Context, tx *gorm.DB, tokenHash string, hashedPassword string) (*model.User, error) {
	ur.logger.Debug("Reset password by reset token hash \n")

	db := ur.getDB(tx)

	var user *model.User
	txErr := ur.withTx(db, func(tx2 *gorm.DB) error {
		var err error
		user, err = ur.GetByResetTokenHash(ctx, tx2, tokenHash)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
		defer cancel()

		return tx2.WithContext(ctx).Model(&model.User{}).Where(&model.User{BaseModel: model.BaseModel{ID: user.ID}}).Updates(map[string]any{
			"password":           hashedPassword,
			"reset_token_hash":   nil,
			"reset_token_expiry": nil,
		}).Error
	})

	return user, txErr
}
