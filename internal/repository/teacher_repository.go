package repository

import (
	"college_portal_backend/internal/model"

	"gorm.io/gorm"
)

type TeacherRepository struct {
	DB *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) *TeacherRepository {
	return &TeacherRepository{DB: db}
}

func (r *TeacherRepository) FindByUsername(username string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.DB.Where("username = ?", username).First(&teacher).Error
	return &teacher, err
}
