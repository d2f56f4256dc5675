package service

import (
	"college_portal_backend/internal/model"
	"college_portal_backend/internal/report"
	"college_portal_backend/internal/repository"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

type MarksService struct {
	StudentRepo *repository.StudentRepository
	MarksRepo   *repository.MarksRepository
	SubjectSvc  *SubjectService
}

func NewMarksService(studentRepo *repository.StudentRepository, marksRepo *repository.MarksRepository, subjectSvc *SubjectService) *MarksService {
	return &MarksService{
		StudentRepo: studentRepo,
		MarksRepo:   marksRepo,
		SubjectSvc:  subjectSvc,
	}
}

// MarksGridRow is one student line of the entry grid: raw stored values where
// marks exist, blanks everywhere else.
type MarksGridRow struct {
	USN    string                   `json:"usn"`
	Name   string                   `json:"name"`
	Serial int                      `json:"serial"`
	Marks  []report.RawSubjectMarks `json:"marks"`
}

// MarksGrid is the roster-by-subjects entry matrix teachers edit.
type MarksGrid struct {
	Branch   string         `json:"branch"`
	Semester int            `json:"semester"`
	Subjects []string       `json:"subjects"`
	Rows     []MarksGridRow `json:"rows"`
}

// StudentMarksEntry is one student's full set of subject marks in a save
// request. Values are free-form; cleanup happens when reports are built.
type StudentMarksEntry struct {
	USN      string                   `json:"usn" binding:"required"`
	Subjects []report.RawSubjectMarks `json:"subjects" binding:"required"`
}

// SaveResult reports how many students a batch save touched.
type SaveResult struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
}

// Grid builds the entry matrix for a branch semester. Each row follows the
// configured subject order; stored raw values fill matching cells and the
// rest stay blank.
func (s *MarksService) Grid(branch string, semester int) (*MarksGrid, error) {
	students, err := s.StudentRepo.FindByBranch(branch, semester)
	if err != nil {
		return nil, err
	}

	subjects, err := s.SubjectSvc.Subjects(branch, semester)
	if err != nil {
		return nil, err
	}

	rows := make([]MarksGridRow, 0, len(students))
	for _, st := range students {
		entries := blankEntries(subjects)

		rec, err := s.MarksRepo.FindByUSNAndSemester(st.USN, semester)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil && len(rec.Subjects) > 0 {
			var stored []report.RawSubjectMarks
			if json.Unmarshal(rec.Subjects, &stored) == nil {
				byName := make(map[string]report.RawSubjectMarks, len(stored))
				for _, e := range stored {
					if _, dup := byName[e.Subject]; !dup {
						byName[e.Subject] = e
					}
				}
				for i, sub := range subjects {
					if e, ok := byName[sub]; ok {
						entries[i] = e
					}
				}
			}
		}

		rows = append(rows, MarksGridRow{
			USN:    st.USN,
			Name:   st.Name,
			Serial: st.Serial,
			Marks:  entries,
		})
	}

	return &MarksGrid{
		Branch:   branch,
		Semester: semester,
		Subjects: subjects,
		Rows:     rows,
	}, nil
}

// SaveAll persists a batch of entries, replacing each student's whole subject
// payload. Entries for USNs that are not on this branch's roster are skipped
// and counted rather than failing the batch.
func (s *MarksService) SaveAll(branch string, semester int, entries []StudentMarksEntry) (*SaveResult, error) {
	result := &SaveResult{}

	for _, entry := range entries {
		student, err := s.StudentRepo.FindByUSN(entry.USN)
		if err != nil || student.Branch != branch {
			result.Skipped++
			continue
		}

		blob, err := json.Marshal(entry.Subjects)
		if err != nil {
			return nil, err
		}

		rec := &model.TermMarks{
			USN:      student.USN,
			Semester: semester,
			Branch:   branch,
			Subjects: blob,
		}
		if err := s.MarksRepo.Upsert(rec); err != nil {
			return nil, err
		}
		result.Processed++
	}

	return result, nil
}

// Reset wipes one student's marks for the semester. Deleting an absent row is
// a no-op, matching how teachers use the button.
func (s *MarksService) Reset(semester int, usn string) error {
	return s.MarksRepo.DeleteByUSNAndSemester(usn, semester)
}

func blankEntries(subjects []string) []report.RawSubjectMarks {
	entries := make([]report.RawSubjectMarks, len(subjects))
	for i, sub := range subjects {
		entries[i] = report.RawSubjectMarks{Subject: sub}
	}
	return entries
}
