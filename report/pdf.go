// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jung-kurt/gofpdf"

	"github.com/danielhkuo/diarisk/form"
	"github.com/danielhkuo/diarisk/models"
)

// Build renders a stored assessment as a one-page PDF report.
func Build(rec models.Assessment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()

	// Header
	pdf.SetTextColor(26, 128, 179)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, "Diabetes Risk Assessment Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, "Type 2 diabetes risk prediction", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Report details
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Report Details", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Report number: %s", rec.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", assessedAt(rec.CreatedAt)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Risk probability: %.1f%%", rec.Probability*100), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Result: %s", riskText(rec.Result)), "", 1, "L", false, 0, "")

	// Risk box
	if rec.Result == 1 {
		pdf.SetFillColor(230, 77, 77)
	} else {
		pdf.SetFillColor(77, 204, 102)
	}
	boxW, boxH := 55.0, 16.0
	boxX := pageWidth - 15 - boxW
	boxY := 42.0
	pdf.Rect(boxX, boxY, boxW, boxH, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(boxX, boxY+boxH/2-4)
	pdf.CellFormat(boxW, 8, riskText(rec.Result), "", 0, "C", false, 0, "")

	// User answers
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(15, boxY+boxH+10)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Your Answers", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)

	labels := form.Labels()
	for _, name := range form.FieldOrder() {
		value, ok := rec.Input[name]
		if !ok {
			continue
		}
		label := labels[name]
		if label == "" {
			label = name
		}

		valueStr := fmt.Sprintf("%g", value)
		if name == "BMI" {
			valueStr = fmt.Sprintf("%.1f", value)
		}

		pdf.CellFormat(120, 7, "- "+label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, valueStr, "", 1, "L", false, 0, "")
	}

	// Footer
	pdf.SetY(-25)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 6, "This tool is for screening only. It is not a medical diagnosis. Please consult your physician.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename returns the attachment name for a report download.
func Filename(rec models.Assessment) string {
	return fmt.Sprintf("diabetes_risk_report_%s_%s.pdf", rec.ID, rec.CreatedAt.Format("20060102"))
}

// assessedAt renders the record's creation time with a relative hint,
// so an older report reads "2026-08-27 09:30 (3 days ago)".
func assessedAt(t time.Time) string {
	return fmt.Sprintf("%s (%s)", t.Format("2006-01-02 15:04"), humanize.Time(t))
}

func riskText(result int) string {
	if result == 1 {
		return "High risk"
	}
	return "Low risk"
}
