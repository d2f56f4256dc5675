package service

import (
	"college_portal_backend/internal/config"
	"college_portal_backend/internal/model"
	"college_portal_backend/internal/report"
	"college_portal_backend/internal/util"
	"college_portal_backend/pkg/monitoring"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// StudentFetcher and MarksFetcher are the two lookups the report pipeline
// needs. They are satisfied by the gorm repositories and by stubs in tests.
type StudentFetcher interface {
	FindByUsername(username string) (*model.Student, error)
}

type MarksFetcher interface {
	FindByUSNAndSemester(usn string, semester int) (*model.TermMarks, error)
}

// ReportService drives the pipeline from a stored raw marks record to either
// a table view or a rendered PDF marksheet.
type ReportService struct {
	Students StudentFetcher
	Marks    MarksFetcher
	Cfg      *config.Config

	// now is swappable so marksheet output is deterministic in tests.
	now func() time.Time
}

func NewReportService(students StudentFetcher, marks MarksFetcher, cfg *config.Config) *ReportService {
	return &ReportService{
		Students: students,
		Marks:    marks,
		Cfg:      cfg,
		now:      time.Now,
	}
}

// StudentMarksView is the JSON shape of the student marks page.
type StudentMarksView struct {
	Name     string           `json:"name"`
	USN      string           `json:"usn"`
	Branch   string           `json:"branch"`
	Semester int              `json:"semester"`
	Table    report.TableView `json:"table"`
}

// Marksheet bundles the rendered PDF with its download filename.
type Marksheet struct {
	Filename string
	Content  []byte
}

// MarksView runs normalize then aggregate for the logged-in student and
// returns the ordered table projection. A student with no marks row gets
// ErrMarksNotFound, which the transport maps to an empty-state 404.
func (s *ReportService) MarksView(username string) (*StudentMarksView, error) {
	student, ms, rep, err := s.pipeline(username)
	if err != nil {
		return nil, err
	}

	return &StudentMarksView{
		Name:     student.Name,
		USN:      student.USN,
		Branch:   student.Branch,
		Semester: student.Semester,
		Table:    report.BuildTableView(ms, rep),
	}, nil
}

// RenderMarksheet runs the same pipeline and hands the result to the PDF
// renderer, with branding taken from configuration.
func (s *ReportService) RenderMarksheet(username string) (*Marksheet, error) {
	student, ms, rep, err := s.pipeline(username)
	if err != nil {
		return nil, err
	}

	data := report.MarksheetData{
		Institution:   s.Cfg.Branding.Institution,
		DocumentTitle: s.Cfg.Branding.DocumentTitle,
		WatermarkText: s.Cfg.Branding.WatermarkText,
		FooterText:    s.Cfg.Branding.FooterText,
		LogoPath:      s.Cfg.Branding.LogoPath,
		StudentName:   student.Name,
		USN:           student.USN,
		Branch:        student.Branch,
		Semester:      student.Semester,
		Table:         report.BuildTableView(ms, rep),
		GeneratedAt:   s.now(),
	}

	content, err := report.RenderMarksheet(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrRenderingFailure, err)
	}

	monitoring.MarksheetCounter.WithLabelValues(student.Branch).Inc()

	filename := fmt.Sprintf("%s_Sem%d_Marksheet.pdf",
		strings.ReplaceAll(student.Name, " ", "_"), student.Semester)

	return &Marksheet{Filename: filename, Content: content}, nil
}

// pipeline resolves the student, loads the raw record for their current
// semester and normalizes plus aggregates it.
func (s *ReportService) pipeline(username string) (*model.Student, *report.MarkSet, report.Report, error) {
	student, err := s.Students.FindByUsername(username)
	if err != nil {
		return nil, nil, report.Report{}, util.ErrStudentNotFound
	}

	rec, err := s.Marks.FindByUSNAndSemester(student.USN, student.Semester)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, report.Report{}, util.ErrMarksNotFound
		}
		return nil, nil, report.Report{}, err
	}

	var raw []report.RawSubjectMarks
	if len(rec.Subjects) > 0 {
		if err := json.Unmarshal(rec.Subjects, &raw); err != nil {
			return nil, nil, report.Report{}, fmt.Errorf("decode stored marks for %s: %w", student.USN, err)
		}
	}

	ms := report.Normalize(raw)
	rep := report.Aggregate(ms, s.Cfg.Marks.EligibilityThreshold)
	return student, ms, rep, nil
}
