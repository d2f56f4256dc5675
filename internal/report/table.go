package report

// BuildTableView projects a MarkSet and its Report into ordered rows plus the
// summary scalars. Row order is MarkSet order; the summary values are taken
// from the Report as-is, so the table and the PDF always agree.
func BuildTableView(ms *MarkSet, rep Report) TableView {
	view := TableView{
		Rows:              make([]TableRow, 0, ms.Len()),
		AverageIA:         rep.AverageIA,
		AverageAttendance: rep.AverageAttendance,
		TopSubject:        rep.TopSubject,
	}

	for _, s := range ms.Scores() {
		view.Rows = append(view.Rows, TableRow{
			Subject:    s.Subject,
			IA1:        s.IA1,
			IA2:        s.IA2,
			IA3:        s.IA3,
			Attendance: s.Attendance,
			Total:      rep.Totals[s.Subject],
			Eligible:   rep.Eligibility[s.Subject],
		})
	}

	return view
}
