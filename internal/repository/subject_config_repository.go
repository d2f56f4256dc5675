package repository

import (
	"college_portal_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

type SubjectConfigRepository struct {
	DB *gorm.DB
}

func NewSubjectConfigRepository(db *gorm.DB) *SubjectConfigRepository {
	return &SubjectConfigRepository{DB: db}
}

func (r *SubjectConfigRepository) FindByBranchAndSemester(branch string, semester int) (*model.SubjectConfig, error) {
	var cfg model.SubjectConfig
	err := r.DB.Where("branch = ? AND semester = ?", branch, semester).First(&cfg).Error
	return &cfg, err
}

func (r *SubjectConfigRepository) Upsert(cfg *model.SubjectConfig) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.SubjectConfig
		err := tx.Where("branch = ? AND semester = ?", cfg.Branch, cfg.Semester).First(&existing).Error
		if err == nil {
			existing.Subjects = cfg.Subjects
			return tx.Save(&existing).Error
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(cfg).Error
		}
		return err
	})
}
