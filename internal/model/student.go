package model

// Student is one roster entry. Serial is the trailing number of the USN and
// drives roster ordering; Username/Password let the student sign in (the
// initial password is the USN, set on import).
// swagger:model Student
type Student struct {
	BaseModel
	USN      string `gorm:"size:20;unique;not null" json:"usn"`
	Username string `gorm:"size:100;index;not null" json:"username"`
	Password string `gorm:"size:100;not null" json:"-"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Branch   string `gorm:"size:20;index;not null" json:"branch"`
	Year     int    `gorm:"default:1" json:"year"`
	Semester int    `gorm:"default:1;index" json:"semester"`
	Serial   int    `gorm:"index" json:"serial"`
}

func (Student) TableName() string {
	return "students"
}
