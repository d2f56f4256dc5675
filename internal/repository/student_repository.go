package repository

import (
	"college_portal_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) FindByUsername(username string) (*model.Student, error) {
	var student model.Student
	err := r.DB.Where("username = ?", username).First(&student).Error
	return &student, err
}

func (r *StudentRepository) FindByUSN(usn string) (*model.Student, error) {
	var student model.Student
	err := r.DB.Where("usn = ?", usn).First(&student).Error
	return &student, err
}

// FindByBranch lists a branch roster ordered by the USN serial number.
// semester 0 means all semesters.
func (r *StudentRepository) FindByBranch(branch string, semester int) ([]model.Student, error) {
	var students []model.Student
	q := r.DB.Where("branch = ?", branch)
	if semester > 0 {
		q = q.Where("semester = ?", semester)
	}
	err := q.Order("serial ASC").Find(&students).Error
	return students, err
}

// Upsert inserts the student or, when the USN is already on the roster,
// overwrites the existing row in place.
func (r *StudentRepository) Upsert(student *model.Student) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.Student
		err := tx.Where("usn = ?", student.USN).First(&existing).Error
		if err == nil {
			student.ID = existing.ID
			student.CreatedAt = existing.CreatedAt
			return tx.Save(student).Error
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(student).Error
		}
		return err
	})
}

// DeleteByUSN removes the student for good. The delete is unscoped so the
// same USN can be imported again later without tripping the unique index.
func (r *StudentRepository) DeleteByUSN(usn, branch string) error {
	return r.DB.Unscoped().Where("usn = ? AND branch = ?", usn, branch).Delete(&model.Student{}).Error
}

func (r *StudentRepository) CountByBranch(branch string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Student{}).Where("branch = ?", branch).Count(&count).Error
	return count, err
}
