package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCoercion(t *testing.T) {
	tests := []struct {
		name string
		in   RawSubjectMarks
		want SubjectScore
	}{
		{
			name: "valid integers pass through",
			in:   RawSubjectMarks{Subject: "Maths", IA1: "20", IA2: "25", IA3: "18", Attendance: "80"},
			want: SubjectScore{Subject: "Maths", IA1: 20, IA2: 25, IA3: 18, Attendance: 80},
		},
		{
			name: "blank cells become zero",
			in:   RawSubjectMarks{Subject: "Physics", IA1: "", IA2: "12", IA3: "", Attendance: ""},
			want: SubjectScore{Subject: "Physics", IA1: 0, IA2: 12, IA3: 0, Attendance: 0},
		},
		{
			name: "non-numeric text becomes zero",
			in:   RawSubjectMarks{Subject: "Chemistry", IA1: "absent", IA2: "N/A", IA3: "20", Attendance: "abc"},
			want: SubjectScore{Subject: "Chemistry", IA1: 0, IA2: 0, IA3: 20, Attendance: 0},
		},
		{
			name: "surrounding whitespace is tolerated",
			in:   RawSubjectMarks{Subject: "Maths", IA1: " 19 ", IA2: "20", IA3: "21", Attendance: "\t90"},
			want: SubjectScore{Subject: "Maths", IA1: 19, IA2: 20, IA3: 21, Attendance: 90},
		},
		{
			name: "decimal text becomes zero",
			in:   RawSubjectMarks{Subject: "Maths", IA1: "17.5", IA2: "20", IA3: "20", Attendance: "82.4"},
			want: SubjectScore{Subject: "Maths", IA1: 0, IA2: 20, IA3: 20, Attendance: 0},
		},
		{
			name: "negative values clamp to zero",
			in:   RawSubjectMarks{Subject: "Maths", IA1: "-4", IA2: "10", IA3: "10", Attendance: "-1"},
			want: SubjectScore{Subject: "Maths", IA1: 0, IA2: 10, IA3: 10, Attendance: 0},
		},
		{
			name: "attendance caps at one hundred",
			in:   RawSubjectMarks{Subject: "Maths", IA1: "10", IA2: "10", IA3: "10", Attendance: "120"},
			want: SubjectScore{Subject: "Maths", IA1: 10, IA2: 10, IA3: 10, Attendance: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := Normalize([]RawSubjectMarks{tt.in})
			require.Equal(t, 1, ms.Len())
			got, ok := ms.Get(tt.in.Subject)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeKeepsInputOrder(t *testing.T) {
	raw := []RawSubjectMarks{
		{Subject: "Zoology"},
		{Subject: "Algebra"},
		{Subject: "Mechanics"},
	}

	ms := Normalize(raw)

	assert.Equal(t, []string{"Zoology", "Algebra", "Mechanics"}, ms.Subjects())
}

func TestNormalizeDuplicateSubjectFirstWins(t *testing.T) {
	raw := []RawSubjectMarks{
		{Subject: "Maths", IA1: "20"},
		{Subject: "Maths", IA1: "5"},
	}

	ms := Normalize(raw)

	require.Equal(t, 1, ms.Len())
	got, ok := ms.Get("Maths")
	require.True(t, ok)
	assert.Equal(t, 20, got.IA1)
}

func TestNormalizeEmptyInput(t *testing.T) {
	ms := Normalize(nil)

	assert.Equal(t, 0, ms.Len())
	assert.Empty(t, ms.Scores())
}

func TestRawFieldUnmarshalMixedScalars(t *testing.T) {
	payload := `[{"subject":"Maths","ia1":20,"ia2":"25","ia3":null,"attendance":80}]`

	var raw []RawSubjectMarks
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	ms := Normalize(raw)
	got, ok := ms.Get("Maths")
	require.True(t, ok)
	assert.Equal(t, SubjectScore{Subject: "Maths", IA1: 20, IA2: 25, IA3: 0, Attendance: 80}, got)
}

func TestMarkSetGetMissing(t *testing.T) {
	ms := NewMarkSet()
	ms.Add(SubjectScore{Subject: "Maths"})

	_, ok := ms.Get("History")
	assert.False(t, ok)
}
