package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateTwoSubjects(t *testing.T) {
	ms := Normalize([]RawSubjectMarks{
		{Subject: "Subject1", IA1: "20", IA2: "25", IA3: "18", Attendance: "80"},
		{Subject: "Subject2", IA1: "15", IA2: "10", IA3: "12", Attendance: "60"},
	})

	rep := Aggregate(ms, DefaultEligibilityThreshold)

	assert.Equal(t, map[string]int{"Subject1": 63, "Subject2": 37}, rep.Totals)
	assert.InDelta(t, 16.7, rep.AverageIA, 1e-9)
	assert.InDelta(t, 70.0, rep.AverageAttendance, 1e-9)
	assert.Equal(t, "Subject1", rep.TopSubject)
	assert.Equal(t, map[string]bool{"Subject1": true, "Subject2": false}, rep.Eligibility)
}

func TestAggregateEmptySet(t *testing.T) {
	rep := Aggregate(NewMarkSet(), DefaultEligibilityThreshold)

	assert.Zero(t, rep.AverageIA)
	assert.Zero(t, rep.AverageAttendance)
	assert.Empty(t, rep.TopSubject)
	assert.Empty(t, rep.Totals)
	assert.Empty(t, rep.Eligibility)
}

func TestAggregateSingleSubject(t *testing.T) {
	ms := Normalize([]RawSubjectMarks{
		{Subject: "DBMS", IA1: "10", IA2: "20", IA3: "25", Attendance: "75"},
	})

	rep := Aggregate(ms, 75)

	require.Equal(t, 55, rep.Totals["DBMS"])
	assert.InDelta(t, 18.3, rep.AverageIA, 1e-9)
	assert.InDelta(t, 75.0, rep.AverageAttendance, 1e-9)
	assert.Equal(t, "DBMS", rep.TopSubject)
}

func TestAggregateTopSubjectTieKeepsFirst(t *testing.T) {
	ms := Normalize([]RawSubjectMarks{
		{Subject: "Networks", IA1: "20", IA2: "20", IA3: "20", Attendance: "90"},
		{Subject: "Compilers", IA1: "25", IA2: "25", IA3: "10", Attendance: "90"},
	})

	rep := Aggregate(ms, 75)

	assert.Equal(t, rep.Totals["Networks"], rep.Totals["Compilers"])
	assert.Equal(t, "Networks", rep.TopSubject)
}

func TestAggregateBoundaryAttendanceIsEligible(t *testing.T) {
	ms := Normalize([]RawSubjectMarks{
		{Subject: "OS", Attendance: "75"},
		{Subject: "ML", Attendance: "74"},
	})

	rep := Aggregate(ms, 75)

	assert.True(t, rep.Eligibility["OS"])
	assert.False(t, rep.Eligibility["ML"])
}

func TestAggregateCustomThreshold(t *testing.T) {
	ms := Normalize([]RawSubjectMarks{
		{Subject: "AI", Attendance: "65"},
	})

	rep := Aggregate(ms, 60)

	assert.True(t, rep.Eligibility["AI"])
}

func TestGPA(t *testing.T) {
	ms := Normalize([]RawSubjectMarks{
		{Subject: "Subject1", IA1: "20", IA2: "25", IA3: "18"},
		{Subject: "Subject2", IA1: "15", IA2: "10", IA3: "12"},
	})

	// 63/90 = 70% and 37/90 = 41.11%, mean 55.56% -> 5.56 on the ten scale.
	assert.InDelta(t, 5.56, GPA(ms, DefaultIAMaxMarks), 1e-9)
}

func TestGPAEmptySet(t *testing.T) {
	assert.Zero(t, GPA(NewMarkSet(), DefaultIAMaxMarks))
}

func TestAggregateAllZeroMarks(t *testing.T) {
	ms := Normalize([]RawSubjectMarks{
		{Subject: "Subject1"},
		{Subject: "Subject2"},
		{Subject: "Subject3"},
	})

	rep := Aggregate(ms, 75)

	assert.Zero(t, rep.AverageIA)
	assert.Zero(t, rep.AverageAttendance)
	// All totals tie at zero, so the first subject keeps the top slot.
	assert.Equal(t, "Subject1", rep.TopSubject)
	assert.False(t, rep.Eligibility["Subject1"])
}
