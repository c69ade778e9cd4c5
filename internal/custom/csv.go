package custom

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/paomind/internal/pao"
)

// CSVHeader is the header row written on export.
var CSVHeader = []string{"Number", "Type", "Title", "Image URL"}

// ErrNoValidRows is returned when an import has nothing usable.
var ErrNoValidRows = errors.New("no valid rows found")

var errNoData = &ImportError{Err: errors.New("CSV file must have a header row and at least one data row")}

// ErrNothingToExport is returned when exporting an empty collection.
var ErrNothingToExport = errors.New("no custom PAO data to export")

// maxListedErrors caps how many row errors an ImportError prints.
const maxListedErrors = 5

// ImportError lists the row diagnostics of an import that failed outright.
type ImportError struct {
	Err  error
	Rows []string
}

func (e *ImportError) Error() string {
	if len(e.Rows) == 0 {
		return e.Err.Error()
	}
	shown := e.Rows
	if len(shown) > maxListedErrors {
		shown = shown[:maxListedErrors]
	}
	msg := e.Err.Error() + ":\n" + strings.Join(shown, "\n")
	if extra := len(e.Rows) - len(shown); extra > 0 {
		msg += fmt.Sprintf("\n... and %d more errors", extra)
	}
	return msg
}

func (e *ImportError) Unwrap() error { return e.Err }

// ImportReport summarises a partially successful import.
type ImportReport struct {
	Imported int
	Skipped  []string
}

// Summary is the one-line status shown after an import.
func (r ImportReport) Summary() string {
	msg := fmt.Sprintf("Successfully imported %d PAO items.", r.Imported)
	if len(r.Skipped) > 0 {
		msg += fmt.Sprintf(" %d rows had errors and were skipped.", len(r.Skipped))
	}
	return msg
}

// WriteCSV exports items under CSVHeader.
func WriteCSV(w io.Writer, items []pao.CustomItem) error {
	if len(items) == 0 {
		return ErrNothingToExport
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, it := range items {
		row := []string{strconv.Itoa(it.Number), string(it.Type), it.Title, it.ImageURL}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type csvColumns struct {
	number, kind, title, image int
}

// locate matches header cells by case-insensitive substring, so "Item
// Number" or "imageurl" are both accepted and columns may appear in any
// order.
func locate(header []string) (csvColumns, error) {
	cols := csvColumns{-1, -1, -1, -1}
	for i, h := range header {
		h = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(h), " ", ""))
		switch {
		case cols.number < 0 && strings.Contains(h, "number"):
			cols.number = i
		case cols.kind < 0 && strings.Contains(h, "type"):
			cols.kind = i
		case cols.title < 0 && strings.Contains(h, "title"):
			cols.title = i
		case cols.image < 0 && (strings.Contains(h, "image") || strings.Contains(h, "url")):
			cols.image = i
		}
	}
	var missing []string
	for _, c := range []struct {
		name string
		idx  int
	}{{"Number", cols.number}, {"Type", cols.kind}, {"Title", cols.title}, {"Image URL", cols.image}} {
		if c.idx < 0 {
			missing = append(missing, c.name)
		}
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

// ParseCSV reads items from r. Invalid rows, including rows the CSV reader
// cannot parse, are skipped and listed in the report; the import only fails
// when no row is valid.
func ParseCSV(r io.Reader) ([]pao.CustomItem, ImportReport, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ImportReport{}, errNoData
	}
	if err != nil {
		return nil, ImportReport{}, fmt.Errorf("read CSV header: %w", err)
	}
	cols, err := locate(header)
	if err != nil {
		return nil, ImportReport{}, &ImportError{Err: err}
	}
	width := max(cols.number, cols.kind, cols.title, cols.image) + 1

	var (
		items  []pao.CustomItem
		report ImportReport
		rows   int
	)
	for rowNum := 2; ; rowNum++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			rows++
			report.Skipped = append(report.Skipped, fmt.Sprintf("Row %d: %s", rowNum, perr.Err))
			continue
		}
		if err != nil {
			return nil, ImportReport{}, fmt.Errorf("read CSV: %w", err)
		}
		rows++
		if blank(rec) {
			continue
		}
		item, problem := parseRow(rec, cols, width)
		if problem != "" {
			report.Skipped = append(report.Skipped, fmt.Sprintf("Row %d: %s", rowNum, problem))
			continue
		}
		items = append(items, item)
	}

	if rows == 0 {
		return nil, ImportReport{}, errNoData
	}
	if len(items) == 0 {
		return nil, report, &ImportError{Err: ErrNoValidRows, Rows: report.Skipped}
	}
	report.Imported = len(items)
	return items, report, nil
}

func parseRow(rec []string, cols csvColumns, width int) (pao.CustomItem, string) {
	if len(rec) < width {
		return pao.CustomItem{}, "Insufficient columns"
	}
	n, ok := pao.ParseNumber(rec[cols.number])
	if !ok {
		return pao.CustomItem{}, "Invalid number (must be 0-99)"
	}
	kind, err := pao.ParseKind(rec[cols.kind])
	if err != nil {
		return pao.CustomItem{}, "Invalid type (must be person, action, or object)"
	}
	title := strings.TrimSpace(rec[cols.title])
	if title == "" {
		return pao.CustomItem{}, "Title cannot be empty"
	}
	image := strings.TrimSpace(rec[cols.image])
	if image == "" {
		return pao.CustomItem{}, "Image URL cannot be empty"
	}
	return pao.CustomItem{Number: n, Type: kind, Title: title, ImageURL: image}, ""
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
