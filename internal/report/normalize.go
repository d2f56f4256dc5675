package report

import (
	"strconv"
	"strings"
)

// Normalize converts raw submitted marks into a typed MarkSet. It never
// fails: empty, missing, or non-numeric cells become 0, negatives clamp to 0,
// and attendance caps at 100. Every input subject appears in the output with
// all four fields set; on duplicate subject names the first entry wins.
func Normalize(raw []RawSubjectMarks) *MarkSet {
	ms := NewMarkSet()
	for _, r := range raw {
		ms.Add(SubjectScore{
			Subject:    r.Subject,
			IA1:        coerceScore(r.IA1),
			IA2:        coerceScore(r.IA2),
			IA3:        coerceScore(r.IA3),
			Attendance: coerceAttendance(r.Attendance),
		})
	}
	return ms
}

// coerceScore is the single zero-on-failure conversion every mark cell goes
// through. The substitution is silent by contract.
func coerceScore(f RawField) int {
	n, err := strconv.Atoi(strings.TrimSpace(string(f)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func coerceAttendance(f RawField) int {
	n := coerceScore(f)
	if n > 100 {
		return 100
	}
	return n
}
