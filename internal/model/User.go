package model

import (
	"time"

	"github.com/hankosign/hankosign/internal/constant"
)

type User struct {
	BaseModel
	Email           string            `gorm:"unique;not null;type:citext" json:"email" form:"email" binding:"required"`
	Password        string            `gorm:"type:text;not null" json:"-" form:"-"`
	Name            string            `gorm:"type:varchar(100);not null" json:"name" form:"name" binding:"required"`
	NameKana        string            `gorm:"type:varchar(100);default:null" json:"nameKana" form:"nameKana"`
	Role            constant.UserRole `gorm:"type:varchar(20);not null;default:USER" json:"role" form:"role"`
	CompanyName     string            `gorm:"type:varchar(200);default:null" json:"companyName" form:"companyName"`
	CorporateNumber string            `gorm:"type:varchar(13);default:null" json:"corporateNumber" form:"corporateNumber"`
	Department      string            `gorm:"type:varchar(100);default:null" json:"department" form:"department"`
	Position        string            `gorm:"type:varchar(100);default:null" json:"position" form:"position"`
	Preferences     JSONMap           `gorm:"type:jsonb;default:null" json:"preferences" form:"-"`

	// Password reset state. Only the SHA-256 hash of the token is stored.
	ResetTokenHash   string     `gorm:"type:text;default:null" json:"-"`
	ResetTokenExpiry *time.Time `gorm:"type:timestamptz;default:null" json:"-"`
}

func (u User) TableName() string {
	return "users"
}

// Sanitized returns the projection safe to hand back to clients.
func (u User) Sanitized() map[string]any {
	return map[string]any{
		"id":              u.ID,
		"email":           u.Email,
		"name":            u.Name,
		"nameKana":        u.NameKana,
		"role":            u.Role,
		"companyName":     u.CompanyName,
		"corporateNumber": u.CorporateNumber,
		"department":      u.Department,
		"position":        u.Position,
		"createdAt":       u.CreatedAt,
	}
}
