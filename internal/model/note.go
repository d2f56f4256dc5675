package model

// Note is course material uploaded by a teacher for one branch, semester,
// subject and module. ObjectKey is the storage-provider key; Filename keeps
// the sanitized original name shown to students.
// swagger:model Note
type Note struct {
	UUIDBase
	Branch      string `gorm:"size:20;index;not null" json:"branch"`
	Semester    int    `gorm:"index;not null" json:"semester"`
	Subject     string `gorm:"size:100;not null" json:"subject"`
	Module      string `gorm:"size:20;not null" json:"module"`
	Filename    string `gorm:"size:255;not null" json:"filename"`
	ObjectKey   string `gorm:"size:512;not null" json:"-"`
	ContentType string `gorm:"size:100" json:"contentType"`
	Size        int64  `gorm:"default:0" json:"size"`
	Uploader    string `gorm:"size:100" json:"uploader"`
	Downloads   int64  `gorm:"default:0" json:"downloads"`
}

func (Note) TableName() string {
	return "notes"
}
