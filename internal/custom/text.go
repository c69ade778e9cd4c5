package custom

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/paomind/internal/pao"
)

// TextFormatGuide shows the line format accepted by ParseText.
const TextFormatGuide = `00 - Person: Ozzy Osbourne | Action: biting | Object: bat
01 - Person: Einstein | Action: calculating | Object: chalkboard
02 - Person: Bruce Lee | Action: kicking | Object: nunchucks`

// ParseText reads lines of the form
//
//	NN - Person: X | Action: Y | Object: Z
//
// Each line yields up to three items. Fields may appear in any order and
// may be omitted; blank lines and lines starting with '#' are ignored.
// Like ParseCSV, bad lines are skipped and the import fails only when no
// item could be read.
func ParseText(r io.Reader) ([]pao.CustomItem, ImportReport, error) {
	var (
		items  []pao.CustomItem
		report ImportReport
	)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		got, problem := parseTextLine(text)
		if problem != "" {
			report.Skipped = append(report.Skipped, fmt.Sprintf("Line %d: %s", line, problem))
			continue
		}
		items = append(items, got...)
	}
	if err := sc.Err(); err != nil {
		return nil, ImportReport{}, fmt.Errorf("read text: %w", err)
	}
	if len(items) == 0 {
		return nil, report, &ImportError{Err: ErrNoValidRows, Rows: report.Skipped}
	}
	report.Imported = len(items)
	return items, report, nil
}

func parseTextLine(text string) ([]pao.CustomItem, string) {
	num, rest, ok := strings.Cut(text, "-")
	if !ok {
		return nil, "Expected \"NN - Person: ... | Action: ... | Object: ...\""
	}
	n, ok := pao.ParseNumber(num)
	if !ok {
		return nil, "Invalid number (must be 0-99)"
	}

	var items []pao.CustomItem
	seen := map[pao.Kind]bool{}
	for _, part := range strings.Split(rest, "|") {
		label, value, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Sprintf("Missing ':' in %q", strings.TrimSpace(part))
		}
		kind, err := pao.ParseKind(label)
		if err != nil {
			return nil, "Invalid type (must be person, action, or object)"
		}
		if seen[kind] {
			return nil, fmt.Sprintf("%s given twice", kind.Label())
		}
		seen[kind] = true
		title := strings.TrimSpace(value)
		if title == "" {
			continue
		}
		items = append(items, pao.CustomItem{Number: n, Type: kind, Title: title})
	}
	if len(items) == 0 {
		return nil, "No titles given"
	}
	return items, ""
}

// WriteText exports items one number per line, in ascending order.
func WriteText(w io.Writer, items []pao.CustomItem) error {
	if len(items) == 0 {
		return ErrNothingToExport
	}
	byNumber := map[int]map[pao.Kind]string{}
	for _, it := range items {
		if byNumber[it.Number] == nil {
			byNumber[it.Number] = map[pao.Kind]string{}
		}
		if _, taken := byNumber[it.Number][it.Type]; !taken {
			byNumber[it.Number][it.Type] = it.Title
		}
	}
	bw := bufio.NewWriter(w)
	for n := pao.MinNumber; n <= pao.MaxNumber; n++ {
		fields, ok := byNumber[n]
		if !ok {
			continue
		}
		var parts []string
		for _, k := range pao.Kinds() {
			if title, ok := fields[k]; ok {
				parts = append(parts, k.Label()+": "+title)
			}
		}
		fmt.Fprintf(bw, "%s - %s\n", pao.FormatNumber(n), strings.Join(parts, " | "))
	}
	return bw.Flush()
}
