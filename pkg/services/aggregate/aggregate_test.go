package aggregate

import (
	"testing"

	"github.com/de-tools/campaign-dash/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func educationView() []domain.Record {
	return []domain.Record{
		{ID: 1, Age: 30, Education: "Grad", MaritalStatus: "Single", TotalSpent: 100, NumWebPurchases: 1},
		{ID: 2, Age: 40, Education: "Grad", MaritalStatus: "Married", TotalSpent: 300, NumWebPurchases: 3},
		{ID: 3, Age: 30, Education: "PhD", MaritalStatus: "Married", TotalSpent: 200, NumStorePurchases: 5},
		{ID: 4, Age: 50, Education: "PhD", MaritalStatus: "Married", TotalSpent: 200, NumCatalogPurchases: 2},
	}
}

func TestMeanBy(t *testing.T) {
	t.Run("first seen order", func(t *testing.T) {
		got, err := MeanBy(educationView(), domain.ColumnEducation, domain.ColumnTotalSpent, domain.OrderFirstSeen)
		require.NoError(t, err)
		assert.Equal(t, []domain.GroupValue{
			{Key: "Grad", Value: 200},
			{Key: "PhD", Value: 200},
		}, got)
	})

	t.Run("value desc breaks ties by key", func(t *testing.T) {
		view := educationView()
		view[0], view[2] = view[2], view[0]

		got, err := MeanBy(view, domain.ColumnEducation, domain.ColumnTotalSpent, domain.OrderValueDesc)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Grad", got[0].Key)
		assert.Equal(t, "PhD", got[1].Key)
	})

	t.Run("single group equals the plain mean", func(t *testing.T) {
		view := []domain.Record{
			{Education: "Basic", TotalSpent: 10},
			{Education: "Basic", TotalSpent: 20},
			{Education: "Basic", TotalSpent: 45},
		}
		got, err := MeanBy(view, domain.ColumnEducation, domain.ColumnTotalSpent, domain.OrderFirstSeen)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Basic", got[0].Key)
		assert.InDelta(t, 25.0, got[0].Value, 1e-9)
	})

	t.Run("age keys sort numerically", func(t *testing.T) {
		view := []domain.Record{
			{Age: 100, NumWebPurchases: 1},
			{Age: 9, NumWebPurchases: 2},
			{Age: 25, NumWebPurchases: 3},
		}
		got, err := MeanBy(view, domain.ColumnAge, domain.ColumnTotalPurchases, domain.OrderKeyAsc)
		require.NoError(t, err)
		keys := []string{got[0].Key, got[1].Key, got[2].Key}
		assert.Equal(t, []string{"9", "25", "100"}, keys)
	})

	t.Run("empty view", func(t *testing.T) {
		_, err := MeanBy(nil, domain.ColumnEducation, domain.ColumnTotalSpent, domain.OrderFirstSeen)
		assert.ErrorIs(t, err, domain.ErrEmptyInput)
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := MeanBy(educationView(), "Country", domain.ColumnTotalSpent, domain.OrderFirstSeen)
		var colErr *domain.UnknownColumnError
		require.ErrorAs(t, err, &colErr)
		assert.Equal(t, "Country", colErr.Column)
	})
}

func TestCountBy(t *testing.T) {
	got, err := CountBy(educationView(), domain.ColumnMaritalStatus, domain.OrderValueDesc)
	require.NoError(t, err)
	assert.Equal(t, []domain.GroupValue{
		{Key: "Married", Value: 3},
		{Key: "Single", Value: 1},
	}, got)

	_, err = CountBy([]domain.Record{}, domain.ColumnMaritalStatus, domain.OrderFirstSeen)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestPeak(t *testing.T) {
	tests := []struct {
		name     string
		input    []domain.GroupValue
		expected domain.GroupValue
	}{
		{
			name:     "tie returns first occurrence",
			input:    []domain.GroupValue{{Key: "A", Value: 5}, {Key: "B", Value: 5}},
			expected: domain.GroupValue{Key: "A", Value: 5},
		},
		{
			name:     "maximum in the middle",
			input:    []domain.GroupValue{{Key: "30", Value: 4}, {Key: "31", Value: 9.5}, {Key: "32", Value: 2}},
			expected: domain.GroupValue{Key: "31", Value: 9.5},
		},
		{
			name:     "negative values",
			input:    []domain.GroupValue{{Key: "x", Value: -3}, {Key: "y", Value: -1}},
			expected: domain.GroupValue{Key: "y", Value: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Peak(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, err := Peak(nil)
		assert.ErrorIs(t, err, domain.ErrEmptyInput)
	})
}

func TestOverallMean(t *testing.T) {
	got, err := OverallMean([]domain.GroupValue{{Key: "a", Value: 100}, {Key: "b", Value: 300}, {Key: "c", Value: 200}})
	require.NoError(t, err)
	assert.InDelta(t, 200.0, got, 1e-9)

	_, err = OverallMean(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestTotalPurchases(t *testing.T) {
	r := domain.Record{NumWebPurchases: 2, NumStorePurchases: 1, NumCatalogPurchases: 3}
	assert.Equal(t, 6, r.TotalPurchases())

	v, err := r.Measure(domain.ColumnTotalPurchases)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
}

func TestLinearFit(t *testing.T) {
	slope, intercept, err := LinearFit([]float64{1, 2, 3, 4}, []float64{3, 5, 7, 9})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, slope, 1e-9)
	assert.InDelta(t, 1.0, intercept, 1e-9)

	_, _, err = LinearFit([]float64{2, 2}, []float64{1, 5})
	assert.ErrorIs(t, err, ErrDegenerateFit)

	_, _, err = LinearFit([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, ErrDegenerateFit)

	_, _, err = LinearFit([]float64{1, 2}, []float64{1})
	assert.Error(t, err)
}
