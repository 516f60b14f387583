package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/de-tools/campaign-dash/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const header = "ID,Age,Income,Education,Marital_Status,TotalSpent,NumWebPurchases,NumStorePurchases,NumCatalogPurchases"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSource_LoadCSV(t *testing.T) {
	// Given
	path := writeFile(t, "campaign.csv", strings.Join([]string{
		header,
		"5524,67,58138,Graduation,Single,1617,8,4,10",
		"2174,70,\"46,344\",Graduation,Single,27,1,2,1",
		",,,,,,,,",
		"4141,59,71613.5,Graduation,Together,776,8,10,2",
	}, "\n"))

	// When
	records, err := NewFileSource(path, "").Load(context.Background())

	// Then
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, domain.Record{
		ID: 5524, Age: 67, Income: 58138, Education: "Graduation", MaritalStatus: "Single",
		TotalSpent: 1617, NumWebPurchases: 8, NumStorePurchases: 4, NumCatalogPurchases: 10,
	}, records[0])
	assert.Equal(t, 46344.0, records[1].Income)
	assert.Equal(t, 71613.5, records[2].Income)
	assert.Equal(t, 20, records[2].TotalPurchases())
}

func TestFileSource_LoadWorkbook(t *testing.T) {
	// Given
	path := filepath.Join(t.TempDir(), "campaign.xlsx")
	f := excelize.NewFile()
	cols := strings.Split(header, ",")
	headerRow := make([]interface{}, len(cols))
	for i, c := range cols {
		headerRow[i] = c
	}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &headerRow))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{1, 45, 61000.25, "PhD", "Married", 512, 3, 6, 1}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{2, 31, 28000, "Basic", "Single", 40, 1, 2, 0}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	// When
	records, err := NewFileSource(path, "").Load(context.Background())

	// Then
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "PhD", records[0].Education)
	assert.Equal(t, 61000.25, records[0].Income)
	assert.Equal(t, 45, records[0].Age)
	assert.Equal(t, 3, records[1].TotalPurchases())
}

func TestFileSource_UnknownSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := NewFileSource(path, "Campaigns").Load(context.Background())

	assert.Error(t, err)
}

func TestFileSource_MissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "absent.csv"), "").Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSource_UnsupportedFormat(t *testing.T) {
	path := writeFile(t, "campaign.json", "[]")
	_, err := NewFileSource(path, "").Load(context.Background())
	assert.ErrorContains(t, err, "unsupported dataset format")
}

func TestParseRows_MissingColumnIsNamed(t *testing.T) {
	rows := [][]string{
		{"ID", "Age", "Education", "Marital_Status", "TotalSpent", "NumWebPurchases", "NumStorePurchases", "NumCatalogPurchases"},
		{"1", "40", "PhD", "Single", "10", "1", "1", "1"},
	}

	_, err := ParseRows(rows)

	var schemaErr *domain.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, domain.ColumnIncome, schemaErr.Column)
	assert.Contains(t, err.Error(), "Income")
}

func TestParseRows_HeaderIsCaseInsensitive(t *testing.T) {
	rows := [][]string{
		{" age ", "INCOME", "education", "marital_status", "totalspent", "numwebpurchases", "numstorepurchases", "numcatalogpurchases"},
		{"40", "1000", "PhD", "Single", "10", "1", "1", "1"},
	}

	records, err := ParseRows(rows)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, 40, records[0].Age)
}

func TestParseRows_BadCells(t *testing.T) {
	tests := []struct {
		name   string
		row    []string
		column string
	}{
		{name: "non numeric income", row: []string{"1", "40", "n/a", "PhD", "Single", "10", "1", "1", "1"}, column: domain.ColumnIncome},
		{name: "infinite income", row: []string{"1", "40", "Inf", "PhD", "Single", "10", "1", "1", "1"}, column: domain.ColumnIncome},
		{name: "nan total spent", row: []string{"1", "40", "100", "PhD", "Single", "NaN", "1", "1", "1"}, column: domain.ColumnTotalSpent},
		{name: "fractional age", row: []string{"1", "40.5", "100", "PhD", "Single", "10", "1", "1", "1"}, column: domain.ColumnAge},
		{name: "empty education", row: []string{"1", "40", "100", "", "Single", "10", "1", "1", "1"}, column: domain.ColumnEducation},
		{name: "short row", row: []string{"1", "40", "100", "PhD", "Single"}, column: domain.ColumnTotalSpent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRows([][]string{strings.Split(header, ","), tt.row})

			var schemaErr *domain.SchemaError
			require.ErrorAs(t, err, &schemaErr, fmt.Sprintf("row %v", tt.row))
			assert.Equal(t, tt.column, schemaErr.Column)
			assert.Equal(t, 1, schemaErr.Row)
		})
	}
}

func TestParseRows_SkipsRowsWithoutAgeOrIncome(t *testing.T) {
	// Given
	rows := [][]string{
		strings.Split(header, ","),
		{"1", "40", "", "PhD", "Single", "10", "1", "1", "1"},
		{"2", "", "2000", "PhD", "Single", "10", "1", "1", "1"},
		{"3", "35", "3000", "Master", "Married", "20", "2", "2", "2"},
	}

	// When
	records, skipped, err := parseRows(rows)

	// Then
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].ID)
}

func TestFileSource_LoadSkipsMissingIncome(t *testing.T) {
	path := writeFile(t, "campaign.csv", strings.Join([]string{
		header,
		"1,40,,PhD,Single,10,1,1,1",
		"2,35,3000,Master,Married,20,2,2,2",
	}, "\n"))

	records, err := NewFileSource(path, "").Load(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2, records[0].ID)
}

func TestParseRows_NoHeader(t *testing.T) {
	_, err := ParseRows(nil)
	var schemaErr *domain.SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}
