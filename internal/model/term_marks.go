package model

import (
	"encoding/json"
)

// TermMarks holds one student's raw marks for one semester. Subjects is an
// ordered JSON array of per-subject entries exactly as submitted (values stay
// strings until the report pipeline normalizes them on read). Saving replaces
// the whole payload; resetting deletes the row.
// swagger:model TermMarks
type TermMarks struct {
	BaseModel
	USN      string          `gorm:"size:20;not null;uniqueIndex:idx_usn_semester" json:"usn"`
	Semester int             `gorm:"not null;uniqueIndex:idx_usn_semester" json:"semester"`
	Branch   string          `gorm:"size:20;index" json:"branch"`
	Subjects json.RawMessage `gorm:"type:json" json:"subjects"`
}

func (TermMarks) TableName() string {
	return "term_marks"
}
