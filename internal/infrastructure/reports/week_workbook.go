// Package reports renders schedule and billing data into files the workshop
// hands out: the week workbook, mechanic calendar feeds and invoice PDFs.
package reports

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"moto_workshop/internal/domain/entities"
)

const (
	weekSheet    = "Week"
	backlogSheet = "Backlog"
)

var ErrWorkbookGenerate = errors.New("generate week workbook failed")

var weekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekWorkbook lays the board out as one row per mechanic and one column per
// day. Each cell lists the job numbers followed by "hours / fill%".
// A second sheet holds the ranked backlog.
func WeekWorkbook(board entities.WeekBoard) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", weekSheet); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrWorkbookGenerate, err)
	}
	if _, err := f.NewSheet(backlogSheet); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrWorkbookGenerate, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrWorkbookGenerate, err)
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrWorkbookGenerate, err)
	}

	if err := writeWeek(f, weekSheet, board, headerStyle, cellStyle); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrWorkbookGenerate, err)
	}
	if err := writeBacklog(f, backlogSheet, board.Backlog, headerStyle); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrWorkbookGenerate, err)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrWorkbookGenerate, err)
	}
	return buf, fmt.Sprintf("week_%s.xlsx", board.WeekStart.Format("2006-01-02")), nil
}

// sheetWriter keeps the first excelize error; later calls are skipped.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) set(col, row int, v any) {
	if w.err != nil {
		return
	}
	var name string
	if name, w.err = excelize.CoordinatesToCellName(col, row); w.err != nil {
		return
	}
	w.err = w.f.SetCellValue(w.sheet, name, v)
}

func (w *sheetWriter) style(fromCol, fromRow, toCol, toRow, styleID int) {
	if w.err != nil {
		return
	}
	var from, to string
	if from, w.err = excelize.CoordinatesToCellName(fromCol, fromRow); w.err != nil {
		return
	}
	if to, w.err = excelize.CoordinatesToCellName(toCol, toRow); w.err != nil {
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, from, to, styleID)
}

func (w *sheetWriter) width(startCol, endCol string, width float64) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetColWidth(w.sheet, startCol, endCol, width)
}

func writeWeek(f *excelize.File, sheet string, board entities.WeekBoard, headerStyle, cellStyle int) error {
	w := &sheetWriter{f: f, sheet: sheet}
	w.width("A", "A", 20)
	w.width("B", "H", 22)

	w.set(1, 1, "Mechanic")
	for i, day := range board.Days {
		w.set(2+i, 1, fmt.Sprintf("%s %s", weekdayNames[i], day.Format("02/01")))
	}
	w.style(1, 1, 8, 1, headerStyle)

	for r, mw := range board.Mechanics {
		row := r + 2
		w.set(1, row, mw.Mechanic.Name)
		for d, load := range mw.Days {
			w.set(2+d, row, dayCellText(load))
		}
	}
	if n := len(board.Mechanics); n > 0 {
		w.style(2, 2, 8, n+1, cellStyle)
	}
	return w.err
}

func writeBacklog(f *excelize.File, sheet string, backlog []entities.RankedWorkOrder, headerStyle int) error {
	headers := []string{"Rank", "Job", "Description", "Priority", "Status", "Hours", "Score"}
	w := &sheetWriter{f: f, sheet: sheet}
	for i, h := range headers {
		w.set(1+i, 1, h)
	}
	w.style(1, 1, len(headers), 1, headerStyle)
	w.width("C", "C", 40)

	for i, rw := range backlog {
		row := i + 2
		wo := rw.WorkOrder
		values := []any{i + 1, wo.JobNumber, wo.Description, string(wo.Priority), string(wo.Status), wo.DurationHours(), rw.Score}
		for c, v := range values {
			w.set(1+c, row, v)
		}
	}
	return w.err
}

func dayCellText(load entities.DayLoad) string {
	if len(load.Jobs) == 0 {
		return "-"
	}
	lines := make([]string, 0, len(load.Jobs)+1)
	for _, wo := range load.Jobs {
		lines = append(lines, fmt.Sprintf("%s (%.1fh)", wo.JobNumber, wo.DurationHours()))
	}
	lines = append(lines, fmt.Sprintf("%.1fh / %.0f%%", load.ScheduledHours, load.FillPercent))
	return strings.Join(lines, "\n")
}
