package report

import "math"

// DefaultEligibilityThreshold is the attendance percentage a student needs
// for exam eligibility unless configuration overrides it.
const DefaultEligibilityThreshold = 75.0

// DefaultIAMaxMarks is the ceiling of a single IA component.
const DefaultIAMaxMarks = 30

// Aggregate computes the per-term report from a normalized MarkSet. An empty
// set yields zero averages, an empty topSubject and empty maps; it is not an
// error. Eligibility uses >= so the boundary value itself is eligible.
func Aggregate(ms *MarkSet, threshold float64) Report {
	rep := Report{
		Totals:      make(map[string]int, ms.Len()),
		Eligibility: make(map[string]bool, ms.Len()),
	}
	if ms.Len() == 0 {
		return rep
	}

	iaSum := 0
	attSum := 0
	topTotal := -1 // strict > keeps the first subject on ties
	for _, s := range ms.Scores() {
		total := s.Total()
		rep.Totals[s.Subject] = total
		rep.Eligibility[s.Subject] = float64(s.Attendance) >= threshold
		iaSum += total
		attSum += s.Attendance
		if total > topTotal {
			topTotal = total
			rep.TopSubject = s.Subject
		}
	}

	n := ms.Len()
	rep.AverageIA = round1(float64(iaSum) / float64(3*n))
	rep.AverageAttendance = round1(float64(attSum) / float64(n))
	return rep
}

// GPA converts IA performance into a ten-point grade: the mean per-subject
// percentage divided by ten, rounded to two decimals. maxMarks is the ceiling
// of one IA component, so each subject is scored out of 3*maxMarks.
func GPA(ms *MarkSet, maxMarks int) float64 {
	if ms.Len() == 0 || maxMarks <= 0 {
		return 0
	}

	totalMax := float64(3 * maxMarks)
	sum := 0.0
	for _, s := range ms.Scores() {
		sum += float64(s.Total()) / totalMax * 100
	}

	avgPercent := sum / float64(ms.Len())
	return math.Round(avgPercent/10*100) / 100
}

// round1 rounds half away from zero to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
