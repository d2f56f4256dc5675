package service

import (
	"college_portal_backend/internal/model"
	"college_portal_backend/internal/report"
	"college_portal_backend/internal/repository"
	"college_portal_backend/internal/util"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

type DashboardService struct {
	StudentRepo *repository.StudentRepository
	NoteRepo    *repository.NoteRepository
	MarksRepo   *repository.MarksRepository
	BranchRepo  *repository.BranchRepository
}

func NewDashboardService(
	studentRepo *repository.StudentRepository,
	noteRepo *repository.NoteRepository,
	marksRepo *repository.MarksRepository,
	branchRepo *repository.BranchRepository,
) *DashboardService {
	return &DashboardService{
		StudentRepo: studentRepo,
		NoteRepo:    noteRepo,
		MarksRepo:   marksRepo,
		BranchRepo:  branchRepo,
	}
}

// StudentDashboard is the landing payload after a student signs in: profile,
// the GPA estimate from current IA marks, and the branch's recent notes.
type StudentDashboard struct {
	Name     string       `json:"name"`
	USN      string       `json:"usn"`
	Branch   string       `json:"branch"`
	Semester int          `json:"semester"`
	Year     int          `json:"year"`
	HasMarks bool         `json:"hasMarks"`
	GPA      float64      `json:"gpa"`
	Notes    []model.Note `json:"notes"`
}

func (s *DashboardService) StudentDashboard(username string) (*StudentDashboard, error) {
	student, err := s.StudentRepo.FindByUsername(username)
	if err != nil {
		return nil, util.ErrStudentNotFound
	}

	notes, err := s.NoteRepo.FindByBranchAndSemester(student.Branch, student.Semester)
	if err != nil {
		return nil, err
	}

	dash := &StudentDashboard{
		Name:     student.Name,
		USN:      student.USN,
		Branch:   student.Branch,
		Semester: student.Semester,
		Year:     student.Year,
		Notes:    notes,
	}

	rec, err := s.MarksRepo.FindByUSNAndSemester(student.USN, student.Semester)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dash, nil
		}
		return nil, err
	}

	var raw []report.RawSubjectMarks
	if len(rec.Subjects) > 0 && json.Unmarshal(rec.Subjects, &raw) == nil {
		ms := report.Normalize(raw)
		if ms.Len() > 0 {
			dash.HasMarks = true
			dash.GPA = report.GPA(ms, report.DefaultIAMaxMarks)
		}
	}

	return dash, nil
}

// BranchOverview is one tile of the teacher dashboard.
type BranchOverview struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Students int64  `json:"students"`
}

// TeacherDashboard lists every branch with its roster size. Branch contents
// stay locked until the teacher unlocks the branch with its password.
func (s *DashboardService) TeacherDashboard() ([]BranchOverview, error) {
	branches, err := s.BranchRepo.FindAll()
	if err != nil {
		return nil, err
	}

	overview := make([]BranchOverview, 0, len(branches))
	for _, b := range branches {
		count, err := s.StudentRepo.CountByBranch(b.Code)
		if err != nil {
			return nil, err
		}
		overview = append(overview, BranchOverview{
			Code:     b.Code,
			Name:     b.Name,
			Students: count,
		})
	}
	return overview, nil
}
