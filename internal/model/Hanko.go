package model

import "github.com/hankosign/hankosign/internal/constant"

type Hanko struct {
	BaseModel
	UserID             string             `gorm:"type:text;not null;index" json:"userId" form:"userId"`
	Name               string             `gorm:"type:varchar(50);not null" json:"name" form:"name"`
	Type               constant.HankoType `gorm:"type:varchar(20);not null" json:"type" form:"type"`
	ImageURL           string             `gorm:"type:text;not null" json:"imageUrl" form:"imageUrl"`
	ImageData          string             `gorm:"type:text;not null" json:"imageData" form:"imageData"`
	Font               string             `gorm:"type:varchar(100);default:null" json:"font" form:"font"`
	Size               int                `gorm:"type:int;not null;default:60" json:"size" form:"size"`
	IsRegistered       bool               `gorm:"type:boolean;not null;default:false" json:"isRegistered" form:"isRegistered"`
	RegistrationNumber string             `gorm:"type:varchar(100);default:null" json:"registrationNumber" form:"registrationNumber"`

	User User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-" form:"-"`
}

func (h Hanko) TableName() string {
	return "hankos"
}
