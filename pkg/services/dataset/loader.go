package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/de-tools/campaign-dash/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// Source yields the full, read-only record collection for a process.
type Source interface {
	Load(ctx context.Context) ([]domain.Record, error)
}

// FileSource reads records from a spreadsheet (.xlsx) or a CSV export.
type FileSource struct {
	Path  string
	Sheet string // optional; first sheet when empty
}

func NewFileSource(path, sheet string) *FileSource {
	return &FileSource{Path: path, Sheet: sheet}
}

func (s *FileSource) Load(ctx context.Context) ([]domain.Record, error) {
	logger := zerolog.Ctx(ctx)

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".xlsx", ".xlsm":
		rows, err = readWorkbook(s.Path, s.Sheet)
	case ".csv":
		rows, err = readCSVFile(s.Path)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(s.Path))
	}
	if err != nil {
		return nil, err
	}

	records, skipped, err := parseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.Path, err)
	}
	if skipped > 0 {
		logger.Warn().
			Str("path", s.Path).
			Int("skipped", skipped).
			Msg("rows without Age or Income were skipped")
	}

	logger.Info().
		Str("path", s.Path).
		Int("records", len(records)).
		Msg("dataset loaded")
	return records, nil
}

func readWorkbook(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSVFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV reads every row of a comma separated stream, header included.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return rows, nil
}

// ParseRows converts a header row plus data rows into records.
// Header names are matched case-insensitively; a missing required column
// fails with a SchemaError naming it. Blank rows are skipped, and so are
// rows with an empty Age or Income cell since no range filter can admit them.
func ParseRows(rows [][]string) ([]domain.Record, error) {
	records, _, err := parseRows(rows)
	return records, err
}

func parseRows(rows [][]string) ([]domain.Record, int, error) {
	if len(rows) == 0 {
		return nil, 0, &domain.SchemaError{Column: domain.ColumnAge, Reason: "is missing: dataset has no header row"}
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[normalizeHeader(h)] = i
	}
	for _, col := range domain.RequiredColumns {
		if _, ok := index[normalizeHeader(col)]; !ok {
			return nil, 0, &domain.SchemaError{Column: col, Reason: "is missing"}
		}
	}

	records := make([]domain.Record, 0, len(rows)-1)
	skipped := 0
	for n, row := range rows[1:] {
		if blank(row) {
			continue
		}
		p := rowParser{row: row, index: index, line: n + 1}
		if p.cell(domain.ColumnAge) == "" || p.cell(domain.ColumnIncome) == "" {
			skipped++
			continue
		}

		r := domain.Record{
			Age:                 p.integer(domain.ColumnAge),
			Income:              p.number(domain.ColumnIncome),
			Education:           p.text(domain.ColumnEducation),
			MaritalStatus:       p.text(domain.ColumnMaritalStatus),
			TotalSpent:          p.number(domain.ColumnTotalSpent),
			NumWebPurchases:     p.integer(domain.ColumnNumWebPurchases),
			NumStorePurchases:   p.integer(domain.ColumnNumStorePurchases),
			NumCatalogPurchases: p.integer(domain.ColumnNumCatalogPurchases),
		}
		if _, ok := index[normalizeHeader(domain.ColumnID)]; ok {
			r.ID = p.integer(domain.ColumnID)
		} else {
			r.ID = n + 1
		}
		if p.err != nil {
			return nil, 0, p.err
		}
		records = append(records, r)
	}

	return records, skipped, nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// rowParser keeps the first conversion error so a row can be read field by field.
type rowParser struct {
	row   []string
	index map[string]int
	line  int
	err   error
}

func (p *rowParser) cell(column string) string {
	i := p.index[normalizeHeader(column)]
	if i >= len(p.row) {
		return ""
	}
	return strings.TrimSpace(p.row[i])
}

func (p *rowParser) text(column string) string {
	v := p.cell(column)
	if v == "" && p.err == nil {
		p.err = &domain.SchemaError{Column: column, Row: p.line, Reason: "is empty"}
	}
	return v
}

func (p *rowParser) number(column string) float64 {
	raw := p.cell(column)
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		if p.err == nil {
			p.err = &domain.SchemaError{Column: column, Row: p.line, Reason: fmt.Sprintf("has non-numeric value %q", raw)}
		}
		return 0
	}
	return v
}

func (p *rowParser) integer(column string) int {
	raw := p.cell(column)
	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	// spreadsheets often store whole numbers as 34.0
	f := p.number(column)
	if f != math.Trunc(f) {
		if p.err == nil {
			p.err = &domain.SchemaError{Column: column, Row: p.line, Reason: fmt.Sprintf("has non-integer value %q", raw)}
		}
		return 0
	}
	return int(f)
}
