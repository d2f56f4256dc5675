package model

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// swagger:model Teacher
type Teacher struct {
	BaseModel
	Username string `gorm:"size:100;unique;not null" json:"username"`
	Password string `gorm:"size:100;not null" json:"-"`
	Name     string `gorm:"size:100" json:"name"`
	Branch   string `gorm:"size:20" json:"branch"`
}

func (Teacher) TableName() string {
	return "teachers"
}
