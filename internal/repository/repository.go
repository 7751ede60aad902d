package repository

import (
	"github.com/hankosign/hankosign/internal/auth"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type baseRepository struct {
	db         *gorm.DB
	logger     *zap.SugaredLogger
	jwtService auth.JWTInterface
	s3         *minio.Client
}

type Repository struct {
	// DB can be used for transaction. Example usage:
	// tx := r.DB.Begin()
	// defer tx.Commit()
	// Then pass tx to the repository function. and use tx.Rollback() if error occurred
	DB        *gorm.DB
	User      *UserRepository
	JWT       *JWTRepository
	Hanko     *HankoRepository
	Document  *DocumentRepository
	Signature *SignatureRepository
	Workflow  *WorkflowRepository
	Approval  *ApprovalRepository
	AuditLog  *AuditLogRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger, jwtService auth.JWTInterface, s3 *minio.Client) *baseRepository {
	return &baseRepository{db: db, logger: logger, jwtService: jwtService, s3: s3}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger, jwtService auth.JWTInterface, s3 *minio.Client) *Repository {
	br := newBaseRepository(db, logger, jwtService, s3)
	_auditRepo := &AuditLogRepository{baseRepository: br}
	_userRepo := &UserRepository{baseRepository: br, audit: _auditRepo}

	return &Repository{
		DB:        db,
		User:      _userRepo,
		JWT:       &JWTRepository{baseRepository: br, user: _userRepo},
		Hanko:     &HankoRepository{baseRepository: br, audit: _auditRepo},
		Document:  &DocumentRepository{baseRepository: br, audit: _auditRepo},
		Signature: &SignatureRepository{baseRepository: br, audit: _auditRepo},
		Workflow:  &WorkflowRepository{baseRepository: br, audit: _auditRepo},
		Approval:  &ApprovalRepository{baseRepository: br, audit: _auditRepo},
		AuditLog:  _auditRepo,
	}
}

// Note: GORM perform write (create/update/delete) operations run inside a transaction to ensure data consistency | So this function is helpful only if we disable auto transaction
// Docs: https://gorm.io/docs/transactions.html#Disable-Default-Transaction
func (b baseRepository) withTx(db *gorm.DB, fn func(*gorm.DB) error) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})

	if err != nil {
		b.logger.Errorf("withTx Transaction error: %v", err)
	}

	return err
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}
