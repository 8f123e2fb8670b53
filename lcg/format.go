// Package lcg - ratio rendering and CSV export.
//
// CSV contract:
//   - Header: "#","Xi","Operation","Result","r_i".
//   - Every field is wrapped in double quotes; embedded quotes are doubled.
//   - Records are joined with "\n"; there is no trailing newline.
//   - Ratios are rendered with exactly D decimals in fixed-point notation.
package lcg

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// CSVHeader is the first record of every export.
var CSVHeader = []string{"#", "Xi", "Operation", "Result", "r_i"}

// FormatRatio renders r with exactly d decimals, never in scientific
// notation. d is clamped to [0, MaxDecimals].
func FormatRatio(r float64, d int) string {
	if d < 0 {
		d = 0
	}
	if d > MaxDecimals {
		d = MaxDecimals
	}
	return strconv.FormatFloat(r, 'f', d, 64)
}

// quoteField wraps v in quotes, doubling any embedded quote.
func quoteField(sb *strings.Builder, v string) {
	sb.WriteByte('"')
	sb.WriteString(strings.ReplaceAll(v, `"`, `""`))
	sb.WriteByte('"')
}

func writeRecord(sb *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		quoteField(sb, f)
	}
}

// rowFields returns the textual cells of r.
func rowFields(r Row, d int) []string {
	return []string{
		strconv.Itoa(r.Index),
		strconv.FormatUint(r.Current, 10),
		r.Op,
		strconv.FormatUint(r.Next, 10),
		FormatRatio(r.Ratio, d),
	}
}

// ToCSV serializes rows into a CSV text blob (header included).
//
// Complexity: O(len(rows)·D).
func ToCSV(rows []Row, d int) string {
	var sb strings.Builder
	sb.Grow(64 * (len(rows) + 1))
	writeRecord(&sb, CSVHeader...)
	for _, r := range rows {
		sb.WriteByte('\n')
		writeRecord(&sb, rowFields(r, d)...)
	}
	return sb.String()
}

// WriteCSV streams the same text as ToCSV to w.
func WriteCSV(w io.Writer, rows []Row, d int) error {
	var sb strings.Builder
	writeRecord(&sb, CSVHeader...)
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("lcg: write csv header: %w", err)
	}
	for _, r := range rows {
		sb.Reset()
		sb.WriteByte('\n')
		writeRecord(&sb, rowFields(r, d)...)
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return fmt.Errorf("lcg: write csv row %d: %w", r.Index, err)
		}
	}
	return nil
}

// CSVRecord is one parsed data line of an export. Ratio stays textual so
// the rendered precision is preserved.
type CSVRecord struct {
	Index   int
	Current uint64
	Op      string
	Next    uint64
	Ratio   string
}

// ParseCSV reads text produced by ToCSV back into records.
// It returns ErrBadCSV (wrapped) on a missing header, a wrong column count
// or a non-numeric numeric cell.
func ParseCSV(text string) ([]CSVRecord, error) {
	rd := csv.NewReader(strings.NewReader(text))
	rd.FieldsPerRecord = len(CSVHeader)

	all, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCSV, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrBadCSV)
	}
	for i, h := range CSVHeader {
		if all[0][i] != h {
			return nil, fmt.Errorf("%w: header column %d is %q", ErrBadCSV, i, all[0][i])
		}
	}

	out := make([]CSVRecord, 0, len(all)-1)
	for line, rec := range all[1:] {
		idx, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d index: %v", ErrBadCSV, line+2, err)
		}
		cur, err := strconv.ParseUint(rec[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d Xi: %v", ErrBadCSV, line+2, err)
		}
		nx, err := strconv.ParseUint(rec[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d result: %v", ErrBadCSV, line+2, err)
		}
		out = append(out, CSVRecord{Index: idx, Current: cur, Op: rec[2], Next: nx, Ratio: rec[4]})
	}
	return out, nil
}

// ExportFilename names a download for the variant at time t, e.g.
// "lineal_2025-03-01T10-20-30-000Z.csv".
func ExportFilename(v Variant, t time.Time) string {
	prefix := "lineal"
	if v == Multiplicative {
		prefix = "multiplicativo"
	}
	stamp := t.UTC().Format("2006-01-02T15:04:05.000Z")
	stamp = strings.NewReplacer(":", "-", ".", "-").Replace(stamp)
	return prefix + "_" + stamp + ".csv"
}
