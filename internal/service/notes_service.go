package service

import (
	"college_portal_backend/internal/config"
	"college_portal_backend/internal/model"
	"college_portal_backend/internal/report"
	"college_portal_backend/internal/repository"
	"college_portal_backend/internal/util"
	"college_portal_backend/pkg/logger"
	"college_portal_backend/pkg/monitoring"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const uploadTimestampFormat = "20060102150405"

// Sniffed content types behind the allowed note extensions: PDF, the zip
// container OOXML files share, and legacy OLE office files.
var noteContentTypes = []string{util.MimePDF, "application/zip", "application/x-ole-storage"}

type NotesService struct {
	NoteRepo    *repository.NoteRepository
	StudentRepo *repository.StudentRepository
	MarksRepo   *repository.MarksRepository
	SubjectSvc  *SubjectService
	Storage     *StorageService
	Redis       *redis.Client
	Cfg         *config.Config
}

func NewNotesService(
	noteRepo *repository.NoteRepository,
	studentRepo *repository.StudentRepository,
	marksRepo *repository.MarksRepository,
	subjectSvc *SubjectService,
	storage *StorageService,
	rdb *redis.Client,
	cfg *config.Config,
) *NotesService {
	return &NotesService{
		NoteRepo:    noteRepo,
		StudentRepo: studentRepo,
		MarksRepo:   marksRepo,
		SubjectSvc:  subjectSvc,
		Storage:     storage,
		Redis:       rdb,
		Cfg:         cfg,
	}
}

// Upload stores a note file and its metadata. Only pdf/doc/docx/ppt/pptx/zip
// are accepted, capped by marks.max_upload_mb. Object keys get a timestamp
// prefix so re-uploading the same filename never overwrites.
func (s *NotesService) Upload(ctx context.Context, branch, uploader string, semester int, subject, module string, fh *multipart.FileHeader) (*model.Note, error) {
	subject = strings.TrimSpace(subject)
	module = strings.TrimSpace(module)
	if subject == "" || !validModule(module) {
		return nil, util.ErrInvalidNoteFields
	}

	if !util.IsAllowedNoteFile(fh.Filename) {
		return nil, util.ErrUnsupportedFileType
	}
	if fh.Size > s.Cfg.Marks.MaxUploadMB<<20 {
		return nil, util.ErrFileTooLarge
	}

	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// Content sniffing backs up the extension check, then the reader rewinds
	// for the actual upload.
	if _, err := util.ValidateMimeType(file, noteContentTypes); err != nil {
		return nil, util.ErrUnsupportedFileType
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	filename := util.SanitizeFilename(fh.Filename)
	key := fmt.Sprintf("notes/%s/%d/%s_%s", branch, semester, time.Now().UTC().Format(uploadTimestampFormat), filename)

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}

	if _, err := s.Storage.Upload(ctx, key, file, fh.Size, contentType); err != nil {
		return nil, err
	}

	note := &model.Note{
		Branch:      branch,
		Semester:    semester,
		Subject:     subject,
		Module:      module,
		Filename:    filename,
		ObjectKey:   key,
		ContentType: contentType,
		Size:        fh.Size,
		Uploader:    uploader,
	}
	if err := s.NoteRepo.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

// ListBranchNotes is the teacher-side listing for one branch semester.
func (s *NotesService) ListBranchNotes(branch string, semester int) ([]model.Note, error) {
	return s.NoteRepo.FindByBranchAndSemester(branch, semester)
}

// Delete removes the note row, then best-effort deletes the stored object.
// An orphaned object is only logged; the note is already gone for users.
func (s *NotesService) Delete(ctx context.Context, branch, id string) error {
	note, err := s.NoteRepo.FindByID(id)
	if err != nil || note.Branch != branch {
		return util.ErrNoteNotFound
	}

	if err := s.NoteRepo.DB.Unscoped().Delete(note).Error; err != nil {
		return err
	}

	if err := s.Storage.Delete(ctx, note.ObjectKey); err != nil {
		logger.Log.Warn("failed to delete note object from storage",
			zap.String("note_id", id), zap.String("key", note.ObjectKey), zap.Error(err))
	}
	return nil
}

// NoteCell is one module slot in the student notes matrix.
type NoteCell struct {
	Module   string `json:"module"`
	Uploaded bool   `json:"uploaded"`
	NoteID   string `json:"noteId,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// SubjectNotes is one subject row of the matrix with a cell per module.
type SubjectNotes struct {
	Subject string     `json:"subject"`
	Modules []NoteCell `json:"modules"`
}

// StudentNotes is the subject-by-module availability matrix a student sees.
type StudentNotes struct {
	Name     string         `json:"name"`
	Branch   string         `json:"branch"`
	Semester int            `json:"semester"`
	Subjects []SubjectNotes `json:"subjects"`
}

// StudentNotesMatrix builds the matrix for the logged-in student. Subject
// rows come from the student's own marks record when one exists, otherwise
// from the branch subject configuration. Note subjects match fuzzily (case
// and spacing ignored) because teachers type them by hand.
func (s *NotesService) StudentNotesMatrix(username string) (*StudentNotes, error) {
	student, err := s.StudentRepo.FindByUsername(username)
	if err != nil {
		return nil, util.ErrStudentNotFound
	}

	subjects, err := s.studentSubjects(student)
	if err != nil {
		return nil, err
	}

	notes, err := s.NoteRepo.FindByBranchAndSemester(student.Branch, student.Semester)
	if err != nil {
		return nil, err
	}

	// newest first from the repository, so the first note seen per
	// subject+module slot wins
	uploaded := make(map[string]map[string]*model.Note)
	for i := range notes {
		n := &notes[i]
		key := normalizeSubject(n.Subject)
		if uploaded[key] == nil {
			uploaded[key] = make(map[string]*model.Note)
		}
		if _, taken := uploaded[key][n.Module]; !taken {
			uploaded[key][n.Module] = n
		}
	}

	matrix := make([]SubjectNotes, 0, len(subjects))
	for _, subject := range subjects {
		cells := make([]NoteCell, 0, util.ModulesPerSubject)
		byModule := uploaded[normalizeSubject(subject)]
		for i := 1; i <= util.ModulesPerSubject; i++ {
			module := fmt.Sprintf("Module %d", i)
			cell := NoteCell{Module: module}
			if n, ok := byModule[module]; ok {
				cell.Uploaded = true
				cell.NoteID = n.ID
				cell.Filename = n.Filename
			}
			cells = append(cells, cell)
		}
		matrix = append(matrix, SubjectNotes{Subject: subject, Modules: cells})
	}

	return &StudentNotes{
		Name:     student.Name,
		Branch:   student.Branch,
		Semester: student.Semester,
		Subjects: matrix,
	}, nil
}

// Download opens the note's file for streaming. branchScope restricts
// students to their own branch; the per-user download counter increments at
// most once per day thanks to a Redis SetNX guard.
func (s *NotesService) Download(ctx context.Context, noteID, downloader, branchScope string) (*model.Note, io.ReadCloser, error) {
	note, err := s.NoteRepo.FindByID(noteID)
	if err != nil {
		return nil, nil, util.ErrNoteNotFound
	}
	if branchScope != "" && note.Branch != branchScope {
		return nil, nil, util.ErrNoteNotFound
	}

	reader, err := s.Storage.Open(ctx, note.ObjectKey)
	if err != nil {
		logger.Log.Warn("note object missing from storage",
			zap.String("note_id", noteID), zap.String("key", note.ObjectKey), zap.Error(err))
		return nil, nil, util.ErrNoteNotFound
	}

	if s.Redis != nil {
		dedupKey := fmt.Sprintf("note_dl:%s:%s", noteID, downloader)
		isNew, _ := s.Redis.SetNX(ctx, dedupKey, "1", 24*time.Hour).Result()
		if isNew {
			go func(id, branch string) {
				if err := s.NoteRepo.IncrementDownloads(id); err != nil {
					logger.Log.Warn("failed to count note download", zap.String("note_id", id), zap.Error(err))
				}
				monitoring.NoteDownloadCounter.WithLabelValues(branch).Inc()
			}(note.ID, note.Branch)
		}
	}

	return note, reader, nil
}

func (s *NotesService) studentSubjects(student *model.Student) ([]string, error) {
	rec, err := s.MarksRepo.FindByUSNAndSemester(student.USN, student.Semester)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.SubjectSvc.Subjects(student.Branch, student.Semester)
		}
		return nil, err
	}

	var raw []report.RawSubjectMarks
	if len(rec.Subjects) > 0 {
		if err := json.Unmarshal(rec.Subjects, &raw); err == nil {
			if subjects := report.Normalize(raw).Subjects(); len(subjects) > 0 {
				return subjects, nil
			}
		}
	}
	return s.SubjectSvc.Subjects(student.Branch, student.Semester)
}

func normalizeSubject(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "")
}

func validModule(module string) bool {
	for i := 1; i <= util.ModulesPerSubject; i++ {
		if module == fmt.Sprintf("Module %d", i) {
			return true
		}
	}
	return false
}
