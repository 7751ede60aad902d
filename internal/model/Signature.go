package model

import "time"

type Signature struct {
	BaseModel
	DocumentID string    `gorm:"type:text;not null;index" json:"documentId" form:"documentId"`
	HankoID    string    `gorm:"type:text;not null" json:"hankoId" form:"hankoId"`
	UserID     string    `gorm:"type:text;not null" json:"userId" form:"-"`
	PositionX  float64   `gorm:"type:double precision;not null" json:"positionX" form:"positionX"`
	PositionY  float64   `gorm:"type:double precision;not null" json:"positionY" form:"positionY"`
	Page       int       `gorm:"type:int;not null;default:1" json:"page" form:"page"`
	Timestamp  time.Time `gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP" json:"timestamp" form:"-"`
	IPAddress  string    `gorm:"type:varchar(64);default:null" json:"-" form:"-"`
	UserAgent  string    `gorm:"type:text;default:null" json:"-" form:"-"`
	IsValid    bool      `gorm:"type:boolean;not null;default:true" json:"isValid" form:"-"`

	Document Document `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-" form:"-"`
	Hanko    Hanko    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"hanko,omitempty" form:"-"`
	User     User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty" form:"-"`
}

func (s Signature) TableName() string {
	return "signatures"
}
