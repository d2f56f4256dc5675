package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestParseRosterRowsCSV(t *testing.T) {
	csvData := strings.Join([]string{
		"Name,USN,Year,Semester",
		"Asha Rao,21secd045,2,3",
		"Bharat Kumar,21SECD002,2,3",
		"only-a-name",
	}, "\n")

	rows, err := parseRosterRows("roster.csv", strings.NewReader(csvData))

	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Name", "USN", "Year", "Semester"}, rows[0])
	assert.Equal(t, "21secd045", rows[1][1])
	// ragged rows survive parsing; validation happens later
	assert.Len(t, rows[3], 1)
}

func TestParseRosterRowsUnsupportedExtension(t *testing.T) {
	_, err := parseRosterRows("roster.xls", strings.NewReader("Name,USN"))
	assert.Error(t, err)

	_, err = parseRosterRows("roster.txt", strings.NewReader("Name,USN"))
	assert.Error(t, err)
}

func TestBuildStudentDerivesIdentity(t *testing.T) {
	student, err := buildStudent("CSE", rosterRow{
		name:     "Asha Rao",
		usn:      "21SECD045",
		serial:   45,
		year:     2,
		semester: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, "asha.rao", student.Username)
	assert.Equal(t, "21SECD045", student.USN)
	assert.Equal(t, "CSE", student.Branch)
	assert.Equal(t, 45, student.Serial)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(student.Password), []byte("21SECD045")))
}

func TestBuildStudentBlankNameFallsBackToUSN(t *testing.T) {
	student, err := buildStudent("CSE", rosterRow{usn: "21SECD007", serial: 7, year: 1, semester: 1})

	require.NoError(t, err)
	assert.Equal(t, "21SECD007", student.Username)
	assert.Empty(t, student.Name)
}

func TestSerialPattern(t *testing.T) {
	tests := []struct {
		usn  string
		want string
	}{
		{"21SECD045", "045"},
		{"22SEAI7", "7"},
		{"23SECV123", "123"},
		{"NODIGITS", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, serialPattern.FindString(tt.usn), tt.usn)
	}
}

func TestRosterCellDefaults(t *testing.T) {
	col := map[string]int{"name": 0, "usn": 1, "year": 2}
	row := []string{"Asha Rao", "21SECD045"}

	assert.Equal(t, "Asha Rao", cell(row, col, "name"))
	assert.Equal(t, "", cell(row, col, "year"), "index past row length reads empty")
	assert.Equal(t, "", cell(row, col, "semester"), "missing column reads empty")

	assert.Equal(t, 2, intOrDefault("2", 1))
	assert.Equal(t, 1, intOrDefault("", 1))
	assert.Equal(t, 1, intOrDefault("-3", 1))
	assert.Equal(t, 4, semesterOrDefault("4"))
	assert.Equal(t, 1, semesterOrDefault("9"))
	assert.Equal(t, 1, semesterOrDefault("abc"))
}
