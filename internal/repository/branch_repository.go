package repository

import (
	"college_portal_backend/internal/model"

	"gorm.io/gorm"
)

type BranchRepository struct {
	DB *gorm.DB
}

func NewBranchRepository(db *gorm.DB) *BranchRepository {
	return &BranchRepository{DB: db}
}

func (r *BranchRepository) FindByCode(code string) (*model.Branch, error) {
	var branch model.Branch
	err := r.DB.Where("code = ?", code).First(&branch).Error
	return &branch, err
}

func (r *BranchRepository) FindAll() ([]model.Branch, error) {
	var branches []model.Branch
	err := r.DB.Order("code ASC").Find(&branches).Error
	return branches, err
}
