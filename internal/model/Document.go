package model

import (
	"time"

	"github.com/hankosign/hankosign/internal/constant"
)

type Document struct {
	BaseModel
	Title            string                  `gorm:"type:varchar(200);not null" json:"title" form:"title"`
	Description      string                  `gorm:"type:varchar(2000);default:null" json:"description" form:"description"`
	FileURL          string                  `gorm:"type:text;not null" json:"fileUrl" form:"-"`
	FileKey          string                  `gorm:"type:text;not null;uniqueIndex" json:"-" form:"-"`
	FileName         string                  `gorm:"type:text;not null" json:"fileName" form:"-"`
	FileSize         int64                   `gorm:"type:bigint;not null" json:"fileSize" form:"-"`
	MimeType         string                  `gorm:"type:varchar(100);not null" json:"mimeType" form:"-"`
	PageCount        int                     `gorm:"type:int;default:0" json:"pageCount" form:"-"`
	Status           constant.DocumentStatus `gorm:"type:varchar(20);not null;default:DRAFT" json:"status" form:"-"`
	VerificationCode string                  `gorm:"type:varchar(14);not null;uniqueIndex" json:"verificationCode" form:"-"`
	TemplateType     string                  `gorm:"type:varchar(100);default:null" json:"templateType" form:"templateType"`
	Metadata         JSONMap                 `gorm:"type:jsonb;default:null" json:"metadata" form:"-"`
	CompletedAt      *time.Time              `gorm:"type:timestamptz;default:null" json:"completedAt" form:"-"`

	CreatedByID string      `gorm:"type:text;not null;index" json:"createdById" form:"-"`
	CreatedBy   User        `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-" form:"-"`
	Signatures  []Signature `gorm:"foreignKey:DocumentID" json:"signatures,omitempty" form:"-"`
}

func (d Document) TableName() string {
	return "documents"
}

// Signable reports whether the document can still accept signatures.
// COMPLETED, REJECTED and ARCHIVED are terminal with respect to signing.
func (d Document) Signable() bool {
	switch d.Status {
	case constant.DocumentStatusCompleted, constant.DocumentStatusRejected, constant.DocumentStatusArchived:
		return false
	}

	return true
}
