package model

import (
	"encoding/json"
)

// SubjectConfig lists the subjects taught for one branch and semester, as an
// ordered JSON array of names. The marks grid and the notes matrix both read
// it; when no row exists callers fall back to a default subject list.
// swagger:model SubjectConfig
type SubjectConfig struct {
	BaseModel
	Branch   string          `gorm:"size:20;not null;uniqueIndex:idx_branch_semester" json:"branch"`
	Semester int             `gorm:"not null;uniqueIndex:idx_branch_semester" json:"semester"`
	Subjects json.RawMessage `gorm:"type:json" json:"subjects"`
}

func (SubjectConfig) TableName() string {
	return "subject_configs"
}
