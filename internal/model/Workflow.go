package model

type Workflow struct {
	BaseModel
	DocumentID    string  `gorm:"type:text;not null;uniqueIndex" json:"documentId" form:"documentId"`
	Name          string  `gorm:"type:varchar(100);not null" json:"name" form:"name"`
	CurrentStep   int     `gorm:"type:int;not null;default:0" json:"currentStep" form:"-"`
	TotalSteps    int     `gorm:"type:int;not null" json:"totalSteps" form:"-"`
	IsSequential  bool    `gorm:"type:boolean;not null;default:true" json:"isSequential" form:"isSequential"`
	Configuration JSONMap `gorm:"type:jsonb;default:null" json:"configuration" form:"-"`

	Document  Document   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-" form:"-"`
	Approvals []Approval `gorm:"foreignKey:WorkflowID" json:"approvals,omitempty" form:"-"`
}

func (w Workflow) TableName() string {
	return "workflows"
}
