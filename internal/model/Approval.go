package model

import (
	"time"

	"github.com/hankosign/hankosign/internal/constant"
)

type Approval struct {
	BaseModel
	WorkflowID string                  `gorm:"type:text;not null;index" json:"workflowId" form:"-"`
	DocumentID string                  `gorm:"type:text;not null;index" json:"documentId" form:"-"`
	ApproverID string                  `gorm:"type:text;not null;index" json:"approverId" form:"approverId"`
	Order      int                     `gorm:"column:step_order;type:int;not null" json:"order" form:"order"`
	Status     constant.ApprovalStatus `gorm:"type:varchar(20);not null;default:PENDING" json:"status" form:"-"`
	DueDate    *time.Time              `gorm:"type:timestamptz;default:null" json:"dueDate" form:"dueDate"`
	Comment    string                  `gorm:"type:varchar(2000);default:null" json:"comment" form:"comment"`

	Workflow Workflow `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-" form:"-"`
	Document Document `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"document,omitempty" form:"-"`
	Approver User     `gorm:"foreignKey:ApproverID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-" form:"-"`
}

func (a Approval) TableName() string {
	return "approvals"
}
