package sessions

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"practice-ledger/core/reconcile"
	"practice-ledger/core/utils"
)

// Column names of the session sheet.
const (
	ColDate      = "Date"
	ColAScore    = "A-Score"
	ColBScore    = "B-Score"
	ColATeam     = "A-team"
	ColBTeam     = "B-team"
	ColProcessed = "Processed"
)

// ErrEmptySheet is returned when the session sheet has no header row.
var ErrEmptySheet = errors.New("session sheet has no header")

// Table is a parsed session sheet. It keeps every column, including ones the
// ledger does not use, so the sheet can be written back unchanged apart from
// the Processed column.
type Table struct {
	Header  []string
	Records [][]string
}

// ParseTable reads a CSV session sheet.
func ParseTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	all, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse session sheet: %w", err)
	}
	if len(all) == 0 {
		return nil, ErrEmptySheet
	}

	header := all[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return &Table{Header: header, Records: all[1:]}, nil
}

// Column returns the index of the named column, or -1.
func (t *Table) Column(name string) int {
	for i, h := range t.Header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

func (t *Table) cell(record []string, col int) string {
	if col < 0 || col >= len(record) {
		return ""
	}
	return record[col]
}

// Rows converts every record into a typed session row.
// Missing team columns become empty rosters; missing or non-numeric scores stay nil.
func (t *Table) Rows() []reconcile.SessionRow {
	var (
		date      = t.Column(ColDate)
		aScore    = t.Column(ColAScore)
		bScore    = t.Column(ColBScore)
		aTeam     = t.Column(ColATeam)
		bTeam     = t.Column(ColBTeam)
		processed = t.Column(ColProcessed)
	)

	rows := make([]reconcile.SessionRow, len(t.Records))
	for i, rec := range t.Records {
		rows[i] = reconcile.SessionRow{
			Line:      i + 1,
			Date:      t.cell(rec, date),
			AScore:    parseScore(t.cell(rec, aScore)),
			BScore:    parseScore(t.cell(rec, bScore)),
			ATeam:     t.cell(rec, aTeam),
			BTeam:     t.cell(rec, bTeam),
			Processed: utils.ToBool(t.cell(rec, processed)),
		}
	}
	return rows
}

func parseScore(cell string) *int {
	n, ok := utils.ParseInt(cell)
	if !ok {
		return nil
	}
	return &n
}

// Apply copies the Processed flag of each row back into its record,
// adding the Processed column when the sheet lacks it.
func (t *Table) Apply(rows []reconcile.SessionRow) error {
	col := t.Column(ColProcessed)
	if col < 0 {
		// Ragged records wider than the header keep their extra cells
		width := len(t.Header)
		for _, rec := range t.Records {
			width = max(width, len(rec))
		}
		for len(t.Header) < width {
			t.Header = append(t.Header, "")
		}
		t.Header = append(t.Header, ColProcessed)
		col = len(t.Header) - 1
	}

	for _, row := range rows {
		idx := row.Line - 1
		if idx < 0 || idx >= len(t.Records) {
			return fmt.Errorf("session row %d out of range", row.Line)
		}
		rec := t.Records[idx]
		for len(rec) <= col {
			rec = append(rec, "")
		}
		rec[col] = utils.FormatBool(row.Processed)
		t.Records[idx] = rec
	}
	return nil
}

// Bytes renders the table as CSV.
func (t *Table) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(t.Records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
