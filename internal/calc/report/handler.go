// Package report renders a single calculation as a PDF.
package report

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"Dunklab/internal/calc/respond"
	"Dunklab/internal/calc/suite"
	"Dunklab/internal/calc/summary"
	"Dunklab/pkg/metrics"
	"github.com/phpdave11/gofpdf"
)

const (
	labelWidth = 60.0
	lineHeight = 6.0
)

// Render writes out as an A4 PDF dated at.
func Render(out *suite.Outcome, at time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(out.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(out.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, lineHeight, fmt.Sprintf("Date: %s", at.Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, tr, "Inputs", out.InputRows)
	section(pdf, tr, "Results", out.ResultRows)

	if len(out.Warnings) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Warnings")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, w := range out.Warnings {
			pdf.MultiCell(0, lineHeight, tr("- "+w), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, tr func(string) string, title string, rows []summary.Row) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(labelWidth, lineHeight, tr(r.Label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, lineHeight, tr(r.Value), "", "L", false)
	}
	pdf.Ln(4)
}

type Handler struct {
	Suite *suite.Registry
	Now   func() time.Time
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	out, err := h.Suite.Load(r)
	if err != nil {
		suite.Fail(w, err)
		return
	}
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	body, err := Render(out, now())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "render_failed", err)
		return
	}
	metrics.RecordExport("pdf")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Slug+"-report.pdf"))
	_, _ = w.Write(body)
}
