package custom

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/paomind/internal/pao"
)

// Format is an on-disk encoding of the custom collection.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

var ErrUnknownFormat = errors.New("unknown format (use csv, json or text)")

// ParseFormat accepts a format name as typed on the command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatForPath picks a format from the file extension. Unknown extensions
// are treated as CSV.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".txt", ".text":
		return FormatText
	}
	return FormatCSV
}

// Encode writes items in format f.
func Encode(w io.Writer, f Format, items []pao.CustomItem) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, items)
	case FormatJSON:
		return WriteJSON(w, items)
	case FormatText:
		return WriteText(w, items)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Decode reads items in format f. JSON is all-or-nothing, so its report
// never lists skipped rows.
func Decode(r io.Reader, f Format) ([]pao.CustomItem, ImportReport, error) {
	switch f {
	case FormatCSV:
		return ParseCSV(r)
	case FormatText:
		return ParseText(r)
	case FormatJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, ImportReport{}, fmt.Errorf("read JSON: %w", err)
		}
		items, err := ParseJSON(data)
		if err != nil {
			return nil, ImportReport{}, err
		}
		return items, ImportReport{Imported: len(items)}, nil
	}
	return nil, ImportReport{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// ExportFile writes items to path. Nothing is created when the encode
// fails, so an empty collection leaves no empty file behind.
func ExportFile(path string, f Format, items []pao.CustomItem) error {
	var buf bytes.Buffer
	if err := Encode(&buf, f, items); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ImportFile parses path and appends the valid items to s under
// PrefixImported ids.
func (s *Store) ImportFile(ctx context.Context, path string, f Format) (ImportReport, error) {
	fh, err := os.Open(path)
	if err != nil {
		return ImportReport{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer fh.Close()

	items, report, err := Decode(fh, f)
	if err != nil {
		return report, err
	}
	n, err := s.Import(ctx, PrefixImported, items)
	if err != nil {
		return report, err
	}
	report.Imported = n
	return report, nil
}
