package service

import (
	"college_portal_backend/internal/config"
	"college_portal_backend/internal/util"
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func notesTestService() *NotesService {
	return &NotesService{Cfg: &config.Config{Marks: config.MarksConfig{MaxUploadMB: 50}}}
}

func TestNotesUploadRejectsUnsupportedExtension(t *testing.T) {
	svc := notesTestService()
	fh := &multipart.FileHeader{Filename: "setup.exe", Size: 1024}

	_, err := svc.Upload(context.Background(), "CSE", "teacher", 3, "Data Structures", "Module 1", fh)

	assert.ErrorIs(t, err, util.ErrUnsupportedFileType)
}

func TestNotesUploadRejectsOversizeFile(t *testing.T) {
	svc := notesTestService()
	fh := &multipart.FileHeader{Filename: "notes.pdf", Size: 51 << 20}

	_, err := svc.Upload(context.Background(), "CSE", "teacher", 3, "Data Structures", "Module 1", fh)

	assert.ErrorIs(t, err, util.ErrFileTooLarge)
}

func TestNotesUploadRejectsBadSubjectOrModule(t *testing.T) {
	svc := notesTestService()
	fh := &multipart.FileHeader{Filename: "notes.pdf", Size: 1024}

	_, err := svc.Upload(context.Background(), "CSE", "teacher", 3, "", "Module 1", fh)
	assert.ErrorIs(t, err, util.ErrInvalidNoteFields)

	_, err = svc.Upload(context.Background(), "CSE", "teacher", 3, "Data Structures", "Module 6", fh)
	assert.ErrorIs(t, err, util.ErrInvalidNoteFields)

	_, err = svc.Upload(context.Background(), "CSE", "teacher", 3, "Data Structures", "module 1", fh)
	assert.ErrorIs(t, err, util.ErrInvalidNoteFields, "module labels are exact")
}

func TestValidModule(t *testing.T) {
	assert.True(t, validModule("Module 1"))
	assert.True(t, validModule("Module 5"))
	assert.False(t, validModule("Module 0"))
	assert.False(t, validModule("Module 6"))
	assert.False(t, validModule(""))
}

func TestNormalizeSubject(t *testing.T) {
	assert.Equal(t, normalizeSubject("Data Structures"), normalizeSubject("datastructures"))
	assert.Equal(t, normalizeSubject("  Math III "), normalizeSubject("math iii"))
	assert.NotEqual(t, normalizeSubject("Physics"), normalizeSubject("Chemistry"))
}
