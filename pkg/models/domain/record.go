package domain

import "strconv"

// Column names as they appear in the campaign dataset header.
const (
	ColumnID                  = "ID"
	ColumnAge                 = "Age"
	ColumnIncome              = "Income"
	ColumnEducation           = "Education"
	ColumnMaritalStatus       = "Marital_Status"
	ColumnTotalSpent          = "TotalSpent"
	ColumnNumWebPurchases     = "NumWebPurchases"
	ColumnNumStorePurchases   = "NumStorePurchases"
	ColumnNumCatalogPurchases = "NumCatalogPurchases"

	// ColumnTotalPurchases is derived, never read from the file.
	ColumnTotalPurchases = "TotalPurchases"
)

// RequiredColumns lists the header columns a dataset must provide.
var RequiredColumns = []string{
	ColumnAge,
	ColumnIncome,
	ColumnEducation,
	ColumnMaritalStatus,
	ColumnTotalSpent,
	ColumnNumWebPurchases,
	ColumnNumStorePurchases,
	ColumnNumCatalogPurchases,
}

// Record is one customer row of the campaign dataset.
type Record struct {
	ID                  int
	Age                 int     // 34
	Income              float64 // 58138
	Education           string  // Graduation
	MaritalStatus       string  // Single
	TotalSpent          float64 // 1617
	NumWebPurchases     int
	NumStorePurchases   int
	NumCatalogPurchases int
}

// TotalPurchases sums purchases across the web, store and catalog channels.
func (r Record) TotalPurchases() int {
	return r.NumWebPurchases + r.NumStorePurchases + r.NumCatalogPurchases
}

// Dimension returns the categorical value of a grouping column.
func (r Record) Dimension(column string) (string, error) {
	switch column {
	case ColumnEducation:
		return r.Education, nil
	case ColumnMaritalStatus:
		return r.MaritalStatus, nil
	case ColumnAge:
		return strconv.Itoa(r.Age), nil
	default:
		return "", &UnknownColumnError{Column: column}
	}
}

// Measure returns the numeric value of a value column.
func (r Record) Measure(column string) (float64, error) {
	switch column {
	case ColumnTotalSpent:
		return r.TotalSpent, nil
	case ColumnTotalPurchases:
		return float64(r.TotalPurchases()), nil
	case ColumnIncome:
		return r.Income, nil
	case ColumnAge:
		return float64(r.Age), nil
	default:
		return 0, &UnknownColumnError{Column: column}
	}
}
