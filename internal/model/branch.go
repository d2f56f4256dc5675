package model

// swagger:model Branch
type Branch struct {
	BaseModel
	Code       string `gorm:"size:20;unique;not null" json:"code"`
	Name       string `gorm:"size:100;not null" json:"name"`
	Password   string `gorm:"size:100;not null" json:"-"`
	USNPattern string `gorm:"size:200;not null" json:"usnPattern"` // anchored regex every student USN must match
}

func (Branch) TableName() string {
	return "branches"
}
