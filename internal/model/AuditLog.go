package model

import "github.com/hankosign/hankosign/internal/constant"

// AuditLog rows are append-only. The application never updates or deletes them.
type AuditLog struct {
	BaseModel
	UserID     string               `gorm:"type:text;not null;index" json:"userId"`
	Action     constant.AuditAction `gorm:"type:varchar(50);not null" json:"action"`
	EntityType string               `gorm:"type:varchar(50);not null" json:"entityType"`
	EntityID   string               `gorm:"type:text;not null" json:"entityId"`
	Details    JSONMap              `gorm:"type:jsonb;default:null" json:"details"`

	User User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (al AuditLog) TableName() string {
	return "audit_logs"
}
