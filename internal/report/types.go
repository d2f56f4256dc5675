// Package report implements the internal-assessment pipeline: raw submitted
// marks are normalized into typed scores, aggregated into a per-term report,
// and rendered either as an ordered table view or as a PDF marksheet.
package report

import (
	"encoding/json"
	"strings"
)

// RawField holds one submitted mark cell. Teachers may leave cells blank or
// type junk, so values stay free-form strings until normalization. JSON
// numbers are tolerated and kept as their literal text.
type RawField string

func (f *RawField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = RawField(s)
		return nil
	}
	if string(data) == "null" {
		*f = ""
		return nil
	}
	*f = RawField(strings.Trim(string(data), `"`))
	return nil
}

// RawSubjectMarks is one subject's marks exactly as submitted. This is the
// stored shape: an ordered array of these makes up a term-marks record.
type RawSubjectMarks struct {
	Subject    string   `json:"subject"`
	IA1        RawField `json:"ia1"`
	IA2        RawField `json:"ia2"`
	IA3        RawField `json:"ia3"`
	Attendance RawField `json:"attendance"`
}

// SubjectScore is the normalizer's output for one subject. Invariants: the
// three IA components are non-negative and Attendance sits in [0,100].
type SubjectScore struct {
	Subject    string `json:"subject"`
	IA1        int    `json:"ia1"`
	IA2        int    `json:"ia2"`
	IA3        int    `json:"ia3"`
	Attendance int    `json:"attendance"`
}

// Total is the subject's combined IA score out of 90.
func (s SubjectScore) Total() int {
	return s.IA1 + s.IA2 + s.IA3
}

// MarkSet is an ordered collection of SubjectScore keyed by subject name.
// Iteration order is insertion order; a subject name appears at most once.
type MarkSet struct {
	scores []SubjectScore
	index  map[string]int
}

func NewMarkSet() *MarkSet {
	return &MarkSet{index: make(map[string]int)}
}

// Add appends a score unless the subject is already present, in which case
// the existing entry is kept and Add reports false.
func (m *MarkSet) Add(s SubjectScore) bool {
	if _, dup := m.index[s.Subject]; dup {
		return false
	}
	m.index[s.Subject] = len(m.scores)
	m.scores = append(m.scores, s)
	return true
}

func (m *MarkSet) Get(subject string) (SubjectScore, bool) {
	if m == nil {
		return SubjectScore{}, false
	}
	i, ok := m.index[subject]
	if !ok {
		return SubjectScore{}, false
	}
	return m.scores[i], true
}

// Scores returns the entries in insertion order. The slice is shared; callers
// must not mutate it.
func (m *MarkSet) Scores() []SubjectScore {
	if m == nil {
		return nil
	}
	return m.scores
}

func (m *MarkSet) Len() int {
	if m == nil {
		return 0
	}
	return len(m.scores)
}

// Subjects returns the subject names in insertion order.
func (m *MarkSet) Subjects() []string {
	if m == nil {
		return nil
	}
	names := make([]string, len(m.scores))
	for i, s := range m.scores {
		names[i] = s.Subject
	}
	return names
}

// Report is the aggregate computed from one MarkSet. It is ephemeral: built
// per request, never stored.
type Report struct {
	Totals            map[string]int  `json:"totals"`
	AverageIA         float64         `json:"averageIA"`
	AverageAttendance float64         `json:"averageAttendance"`
	TopSubject        string          `json:"topSubject"`
	Eligibility       map[string]bool `json:"eligibility"`
}

// TableRow is one rendered line of the marks table.
type TableRow struct {
	Subject    string `json:"subject"`
	IA1        int    `json:"ia1"`
	IA2        int    `json:"ia2"`
	IA3        int    `json:"ia3"`
	Attendance int    `json:"attendance"`
	Total      int    `json:"total"`
	Eligible   bool   `json:"eligible"`
}

// TableView is the ordered, render-ready projection of a report. Rows follow
// MarkSet order; the summary scalars are copied from the Report unchanged so
// every renderer shows identical numbers.
type TableView struct {
	Rows              []TableRow `json:"rows"`
	AverageIA         float64    `json:"averageIA"`
	AverageAttendance float64    `json:"averageAttendance"`
	TopSubject        string     `json:"topSubject"`
}
