package repository

import (
	"college_portal_backend/internal/model"

	"gorm.io/gorm"
)

type NoteRepository struct {
	DB *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Create(note *model.Note) error {
	return r.DB.Create(note).Error
}

func (r *NoteRepository) FindByID(id string) (*model.Note, error) {
	var note model.Note
	err := r.DB.Where("id = ?", id).First(&note).Error
	return &note, err
}

// FindByBranchAndSemester returns newest-first, the order the student
// dashboard shows.
func (r *NoteRepository) FindByBranchAndSemester(branch string, semester int) ([]model.Note, error) {
	var notes []model.Note
	err := r.DB.Where("branch = ? AND semester = ?", branch, semester).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) IncrementDownloads(id string) error {
	return r.DB.Model(&model.Note{}).
		Where("id = ?", id).
		Update("downloads", gorm.Expr("downloads + ?", 1)).
		Error
}
