package service

import (
	"bytes"
	"college_portal_backend/internal/config"
	"college_portal_backend/internal/model"
	"college_portal_backend/internal/util"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubStudents struct {
	student *model.Student
	err     error
}

func (s *stubStudents) FindByUsername(string) (*model.Student, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.student, nil
}

type stubMarks struct {
	rec *model.TermMarks
	err error
}

func (s *stubMarks) FindByUSNAndSemester(string, int) (*model.TermMarks, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rec, nil
}

func reportTestConfig() *config.Config {
	return &config.Config{
		Marks: config.MarksConfig{EligibilityThreshold: 75},
		Branding: config.BrandingConfig{
			Institution:   "COLLEGE OF ENGINEERING",
			DocumentTitle: "Internal Assessment Marksheet",
			WatermarkText: "INTERNAL ASSESSMENT REPORT",
			FooterText:    "Generated by College Portal | This is a system-generated report.",
		},
	}
}

func testStudent() *model.Student {
	return &model.Student{
		USN:      "21SECD045",
		Username: "asha.rao",
		Name:     "Asha Rao",
		Branch:   "CSE",
		Semester: 3,
	}
}

func testMarksRecord(t *testing.T) *model.TermMarks {
	t.Helper()
	subjects := []map[string]string{
		{"subject": "Subject1", "ia1": "20", "ia2": "25", "ia3": "18", "attendance": "80"},
		{"subject": "Subject2", "ia1": "15", "ia2": "10", "ia3": "12", "attendance": "60"},
	}
	blob, err := json.Marshal(subjects)
	require.NoError(t, err)
	return &model.TermMarks{USN: "21SECD045", Semester: 3, Branch: "CSE", Subjects: blob}
}

func TestReportServiceMarksView(t *testing.T) {
	svc := NewReportService(
		&stubStudents{student: testStudent()},
		&stubMarks{rec: testMarksRecord(t)},
		reportTestConfig(),
	)

	view, err := svc.MarksView("asha.rao")

	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", view.Name)
	assert.Equal(t, "21SECD045", view.USN)
	assert.Equal(t, 3, view.Semester)
	require.Len(t, view.Table.Rows, 2)
	assert.Equal(t, "Subject1", view.Table.Rows[0].Subject)
	assert.Equal(t, 63, view.Table.Rows[0].Total)
	assert.True(t, view.Table.Rows[0].Eligible)
	assert.Equal(t, 37, view.Table.Rows[1].Total)
	assert.False(t, view.Table.Rows[1].Eligible)
	assert.InDelta(t, 16.7, view.Table.AverageIA, 1e-9)
	assert.InDelta(t, 70.0, view.Table.AverageAttendance, 1e-9)
	assert.Equal(t, "Subject1", view.Table.TopSubject)
}

func TestReportServiceMarksViewNoRecord(t *testing.T) {
	svc := NewReportService(
		&stubStudents{student: testStudent()},
		&stubMarks{err: gorm.ErrRecordNotFound},
		reportTestConfig(),
	)

	_, err := svc.MarksView("asha.rao")

	assert.ErrorIs(t, err, util.ErrMarksNotFound)
}

func TestReportServiceMarksViewUnknownStudent(t *testing.T) {
	svc := NewReportService(
		&stubStudents{err: gorm.ErrRecordNotFound},
		&stubMarks{},
		reportTestConfig(),
	)

	_, err := svc.MarksView("ghost")

	assert.ErrorIs(t, err, util.ErrStudentNotFound)
}

func TestReportServiceRenderMarksheet(t *testing.T) {
	svc := NewReportService(
		&stubStudents{student: testStudent()},
		&stubMarks{rec: testMarksRecord(t)},
		reportTestConfig(),
	)
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC)
	}

	sheet, err := svc.RenderMarksheet("asha.rao")

	require.NoError(t, err)
	assert.Equal(t, "Asha_Rao_Sem3_Marksheet.pdf", sheet.Filename)
	assert.True(t, bytes.HasPrefix(sheet.Content, []byte("%PDF-")))
	assert.NotEmpty(t, sheet.Content)
}

func TestReportServiceRenderMarksheetEmptySubjects(t *testing.T) {
	rec := &model.TermMarks{USN: "21SECD045", Semester: 3, Subjects: []byte(`[]`)}
	svc := NewReportService(
		&stubStudents{student: testStudent()},
		&stubMarks{rec: rec},
		reportTestConfig(),
	)

	sheet, err := svc.RenderMarksheet("asha.rao")

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(sheet.Content, []byte("%PDF-")))
}
