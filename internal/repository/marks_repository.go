package repository

import (
	"college_portal_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

type MarksRepository struct {
	DB *gorm.DB
}

func NewMarksRepository(db *gorm.DB) *MarksRepository {
	return &MarksRepository{DB: db}
}

func (r *MarksRepository) FindByUSNAndSemester(usn string, semester int) (*model.TermMarks, error) {
	var marks model.TermMarks
	err := r.DB.Where("usn = ? AND semester = ?", usn, semester).First(&marks).Error
	return &marks, err
}

// Upsert stores one student's marks for one semester, replacing the whole
// subjects payload when a row already exists.
func (r *MarksRepository) Upsert(marks *model.TermMarks) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.TermMarks
		err := tx.Where("usn = ? AND semester = ?", marks.USN, marks.Semester).First(&existing).Error
		if err == nil {
			existing.Branch = marks.Branch
			existing.Subjects = marks.Subjects
			return tx.Save(&existing).Error
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(marks).Error
		}
		return err
	})
}

// DeleteByUSNAndSemester resets one student's marks for one semester. Deletes
// are unscoped so a later save can recreate the (usn, semester) row.
func (r *MarksRepository) DeleteByUSNAndSemester(usn string, semester int) error {
	return r.DB.Unscoped().Where("usn = ? AND semester = ?", usn, semester).Delete(&model.TermMarks{}).Error
}

// DeleteAllByUSN removes every semester's marks for a student, used when the
// student is dropped from the roster.
func (r *MarksRepository) DeleteAllByUSN(usn string) error {
	return r.DB.Unscoped().Where("usn = ?", usn).Delete(&model.TermMarks{}).Error
}
