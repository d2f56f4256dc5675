package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTableViewOrdersRows(t *testing.T) {
	ms := Normalize([]RawSubjectMarks{
		{Subject: "Subject1", IA1: "20", IA2: "25", IA3: "18", Attendance: "80"},
		{Subject: "Subject2", IA1: "15", IA2: "10", IA3: "12", Attendance: "60"},
	})
	rep := Aggregate(ms, 75)

	view := BuildTableView(ms, rep)

	require.Len(t, view.Rows, 2)
	assert.Equal(t, TableRow{
		Subject: "Subject1", IA1: 20, IA2: 25, IA3: 18, Attendance: 80, Total: 63, Eligible: true,
	}, view.Rows[0])
	assert.Equal(t, TableRow{
		Subject: "Subject2", IA1: 15, IA2: 10, IA3: 12, Attendance: 60, Total: 37, Eligible: false,
	}, view.Rows[1])
}

func TestBuildTableViewCopiesSummaryUnchanged(t *testing.T) {
	ms := Normalize([]RawSubjectMarks{
		{Subject: "Subject1", IA1: "20", IA2: "25", IA3: "18", Attendance: "80"},
		{Subject: "Subject2", IA1: "15", IA2: "10", IA3: "12", Attendance: "60"},
	})
	rep := Aggregate(ms, 75)

	view := BuildTableView(ms, rep)

	assert.Equal(t, rep.AverageIA, view.AverageIA)
	assert.Equal(t, rep.AverageAttendance, view.AverageAttendance)
	assert.Equal(t, rep.TopSubject, view.TopSubject)
}

func TestBuildTableViewEmptySet(t *testing.T) {
	ms := NewMarkSet()

	view := BuildTableView(ms, Aggregate(ms, 75))

	assert.Empty(t, view.Rows)
	assert.Zero(t, view.AverageIA)
	assert.Zero(t, view.AverageAttendance)
	assert.Empty(t, view.TopSubject)
}
