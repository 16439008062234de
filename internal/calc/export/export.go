// Package export writes a single calculation to an XLSX workbook.
package export

import (
	"fmt"
	"net/http"

	"Dunklab/internal/calc/respond"
	"Dunklab/internal/calc/suite"
	"Dunklab/internal/calc/summary"
	"Dunklab/pkg/metrics"
	"github.com/xuri/excelize/v2"
)

const (
	SheetInputs  = "Inputs"
	SheetResults = "Results"

	contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Workbook builds the workbook for out: inputs on one sheet, results and
// warnings on the other.
func Workbook(out *suite.Outcome) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetInputs); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SheetResults); err != nil {
		return nil, err
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := writeRows(f, SheetInputs, header, out.InputRows); err != nil {
		return nil, err
	}
	rows := append([]summary.Row(nil), out.ResultRows...)
	for _, w := range out.Warnings {
		rows = append(rows, summary.Text("Warning", w))
	}
	if err := writeRows(f, SheetResults, header, rows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, header int, rows []summary.Row) error {
	if err := f.SetSheetRow(sheet, "A1", &[]any{"Field", "Value"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", header); err != nil {
		return err
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]any{r.Label, r.Value}); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "B", "B", 80)
}

type Handler struct {
	Suite *suite.Registry
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	out, err := h.Suite.Load(r)
	if err != nil {
		suite.Fail(w, err)
		return
	}
	body, err := Workbook(out)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "render_failed", err)
		return
	}
	metrics.RecordExport("xlsx")

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Slug+".xlsx"))
	_, _ = w.Write(body)
}
