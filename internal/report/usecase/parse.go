package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgerror"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/report/entity"
)

var timeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.000",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"2006/01/02 15:04:05",
	"01/02/2006",
	"01/02/2006 15:04:05",
}

// maxExcelSerial is 9999-12-31, the last date a workbook can hold.
const maxExcelSerial = 2958465

type columns struct {
	date    int
	dataset int
	reason  int
}

// parseWorkbook reads the failed query log sheet from raw xlsx bytes.
//
// Every error it returns is a malformed input error.
func parseWorkbook(ctx context.Context, data []byte, sheet string) (entity.LogTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{RawCellValue: true})
	if err != nil {
		return entity.LogTable{}, pkgerror.NewMalformedInput(fmt.Errorf("open xlsx: %w", err))
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return entity.LogTable{}, pkgerror.NewMalformedInput(errors.New("workbook has no sheets"))
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return entity.LogTable{}, pkgerror.NewMalformedInput(fmt.Errorf("read sheet %q: %w", sheet, err))
	}

	table, err := buildTable(rows)
	if err != nil {
		return entity.LogTable{}, pkgerror.NewMalformedInput(err)
	}

	slog.InfoContext(ctx, "workbook parsed", "sheet", sheet, "rows", table.Len())

	return table, nil
}

func buildTable(rows [][]string) (entity.LogTable, error) {
	headerAt := -1
	for i, row := range rows {
		if !isBlank(row) {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return entity.LogTable{}, errors.New("sheet has no header row")
	}

	headers := make([]string, len(rows[headerAt]))
	for i, h := range rows[headerAt] {
		headers[i] = strings.TrimSpace(h)
	}

	cols, err := locateColumns(headers)
	if err != nil {
		return entity.LogTable{}, err
	}

	table := entity.LogTable{Headers: headers}
	for i := headerAt + 1; i < len(rows); i++ {
		if isBlank(rows[i]) {
			continue
		}

		row, err := buildRow(i+1, headers, cols, rows[i])
		if err != nil {
			return entity.LogTable{}, err
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func locateColumns(headers []string) (columns, error) {
	cols := columns{date: -1, dataset: -1, reason: -1}
	for i, h := range headers {
		switch strings.ToLower(h) {
		case entity.ColumnDate:
			if cols.date < 0 {
				cols.date = i
			}
		case entity.ColumnDataset:
			if cols.dataset < 0 {
				cols.dataset = i
			}
		case entity.ColumnReason:
			if cols.reason < 0 {
				cols.reason = i
			}
		}
	}

	var missing []string
	if cols.date < 0 {
		missing = append(missing, entity.ColumnDate)
	}
	if cols.dataset < 0 {
		missing = append(missing, entity.ColumnDataset)
	}
	if cols.reason < 0 {
		missing = append(missing, entity.ColumnReason)
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}

	return cols, nil
}

func buildRow(rowNum int, headers []string, cols columns, cells []string) (entity.LogRow, error) {
	rawDate := cell(cells, cols.date)
	if rawDate == "" {
		return entity.LogRow{}, fmt.Errorf("row %d: empty %s", rowNum, entity.ColumnDate)
	}

	ts, err := parseTimestamp(rawDate)
	if err != nil {
		return entity.LogRow{}, fmt.Errorf("row %d: %w", rowNum, err)
	}

	row := entity.LogRow{
		Row:       rowNum,
		Timestamp: ts,
		Dataset:   cell(cells, cols.dataset),
		Reason:    cell(cells, cols.reason),
	}

	for i, h := range headers {
		if h == "" || i == cols.date || i == cols.dataset || i == cols.reason {
			continue
		}
		if row.Details == nil {
			row.Details = make(map[string]string)
		}
		if _, exists := row.Details[h]; !exists {
			row.Details[h] = cell(cells, i)
		}
	}

	return row, nil
}

// parseTimestamp accepts an Excel serial date or a textual date. Slashed dates
// are read month first.
func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if math.IsNaN(serial) || math.IsInf(serial, 0) || serial <= 0 || serial >= maxExcelSerial+1 {
			return time.Time{}, fmt.Errorf("invalid excel date %q", raw)
		}
		ts, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid excel date %q: %w", raw, err)
		}
		return ts, nil
	}

	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

func cell(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
