package report

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
)

const marksheetDateFormat = "02 January 2006"

// MarksheetData carries everything the PDF renderer needs. GeneratedAt is
// injected by the caller so output is reproducible.
type MarksheetData struct {
	Institution   string
	DocumentTitle string
	WatermarkText string
	FooterText    string
	LogoPath      string

	StudentName string
	USN         string
	Branch      string
	Semester    int

	Table       TableView
	GeneratedAt time.Time
}

// RenderMarksheet produces the A4 PDF marksheet: optional logo, title block,
// student identity, the marks table, a summary line and a footer. The
// watermark and footer repeat on every page, including pages created by
// automatic page breaks. A table with zero rows still renders a valid
// document.
func RenderMarksheet(data MarksheetData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 20, 14)
	pdf.SetAutoPageBreak(true, 18)

	pageW, pageH := pdf.GetPageSize()

	pdf.SetHeaderFunc(func() {
		drawWatermark(pdf, data.WatermarkText, pageW, pageH)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(153, 153, 153)
		pdf.CellFormat(0, 6, data.FooterText, "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// The logo is optional: when the asset is absent the element is simply
	// omitted and rendering carries on.
	const logoSize = 24.0
	if data.LogoPath != "" {
		if _, statErr := os.Stat(data.LogoPath); statErr == nil {
			pdf.ImageOptions(data.LogoPath, (pageW-logoSize)/2, pdf.GetY(), logoSize, logoSize, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
			pdf.SetY(pdf.GetY() + logoSize + 4)
		}
	}

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(255, 75, 43)
	pdf.CellFormat(0, 10, data.Institution, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(0, 7, data.DocumentTitle, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	identity := []struct {
		label string
		value string
	}{
		{"Name", data.StudentName},
		{"USN", data.USN},
		{"Branch", data.Branch},
		{"Semester", strconv.Itoa(data.Semester)},
	}
	for _, row := range identity {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(28, 6, row.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, row.value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	drawMarksTable(pdf, data.Table.Rows)

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(255, 75, 43)
	summary := fmt.Sprintf("Average IA Score: %.1f   |   Average Attendance: %.1f%%",
		data.Table.AverageIA, data.Table.AverageAttendance)
	pdf.CellFormat(0, 7, summary, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(0, 7, "Date Generated: "+data.GeneratedAt.Format(marksheetDateFormat), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render marksheet: %w", err)
	}
	return buf.Bytes(), nil
}

func drawMarksTable(pdf *fpdf.Fpdf, rows []TableRow) {
	headers := []string{"Subject", "IA1", "IA2", "IA3", "Attendance (%)", "Total (90)", "Status"}
	widths := []float64{58, 15, 15, 15, 30, 22, 27}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(255, 111, 60)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(190, 190, 190)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(51, 51, 51)
	for i, row := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 247, 237)
		}
		status := "Shortage"
		if row.Eligible {
			status = "Eligible"
		}
		cells := []string{
			row.Subject,
			strconv.Itoa(row.IA1),
			strconv.Itoa(row.IA2),
			strconv.Itoa(row.IA3),
			strconv.Itoa(row.Attendance),
			strconv.Itoa(row.Total),
			status,
		}
		for j, cell := range cells {
			pdf.CellFormat(widths[j], 7, cell, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
}

func drawWatermark(pdf *fpdf.Fpdf, text string, pageW, pageH float64) {
	if text == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 42)
	pdf.SetTextColor(230, 230, 230)
	pdf.SetAlpha(0.12, "Normal")
	pdf.TransformBegin()
	pdf.TransformRotate(45, pageW/2, pageH/2)
	width := pdf.GetStringWidth(text)
	pdf.Text(pageW/2-width/2, pageH/2, text)
	pdf.TransformEnd()
	pdf.SetAlpha(1, "Normal")
	pdf.SetTextColor(0, 0, 0)
}
