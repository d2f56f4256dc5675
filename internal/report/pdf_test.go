package report

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marksheetFixture(rows []RawSubjectMarks) MarksheetData {
	ms := Normalize(rows)
	rep := Aggregate(ms, DefaultEligibilityThreshold)
	return MarksheetData{
		Institution:   "COLLEGE OF ENGINEERING",
		DocumentTitle: "Internal Assessment Marksheet",
		WatermarkText: "INTERNAL ASSESSMENT REPORT",
		FooterText:    "Generated by College Portal | This is a system-generated report.",
		StudentName:   "Asha Rao",
		USN:           "21SECD045",
		Branch:        "CSE",
		Semester:      3,
		Table:         BuildTableView(ms, rep),
		GeneratedAt:   time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC),
	}
}

func TestRenderMarksheetProducesPDF(t *testing.T) {
	data := marksheetFixture([]RawSubjectMarks{
		{Subject: "Subject1", IA1: "20", IA2: "25", IA3: "18", Attendance: "80"},
		{Subject: "Subject2", IA1: "15", IA2: "10", IA3: "12", Attendance: "60"},
	})

	out, err := RenderMarksheet(data)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output must start with the PDF magic bytes")
	assert.Greater(t, len(out), 1000)
}

func TestRenderMarksheetZeroSubjects(t *testing.T) {
	data := marksheetFixture(nil)

	out, err := RenderMarksheet(data)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.NotEmpty(t, out)
}

func TestRenderMarksheetMissingLogoIsSkipped(t *testing.T) {
	data := marksheetFixture([]RawSubjectMarks{
		{Subject: "Subject1", IA1: "20", IA2: "25", IA3: "18", Attendance: "80"},
	})
	data.LogoPath = "testdata/does-not-exist.png"

	out, err := RenderMarksheet(data)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRenderMarksheetManySubjectsPaginates(t *testing.T) {
	var rows []RawSubjectMarks
	for i := 0; i < 60; i++ {
		rows = append(rows, RawSubjectMarks{
			Subject:    fmt.Sprintf("Elective %02d", i+1),
			IA1:        "18",
			IA2:        "22",
			IA3:        "20",
			Attendance: "85",
		})
	}
	data := marksheetFixture(rows)

	out, err := RenderMarksheet(data)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), 4000, "a multi-page marksheet should be noticeably larger")
}
