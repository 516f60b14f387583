package chart

import (
	"bytes"
	"testing"

	"github.com/de-tools/campaign-dash/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestRenderer_RendersEveryKind(t *testing.T) {
	ref := 250.0
	tests := []struct {
		name string
		spec domain.ChartSpec
	}{
		{
			name: "bar with color scale",
			spec: domain.ChartSpec{
				ID:     domain.ChartSpendingByEducation,
				Kind:   domain.ChartKindBar,
				Title:  "Average Total Spending by Education",
				YField: domain.ColumnTotalSpent,
				Series: []domain.Series{{Name: "avg", Points: []domain.Point{{Label: "PhD", Y: 300}, {Label: "Basic", Y: 200}}}},
				Options: domain.ChartOptions{
					ColorScale:    "Blues",
					ColorValues:   []float64{300, 200},
					ReferenceLine: &ref,
				},
			},
		},
		{
			name: "line with a single point and a peak",
			spec: domain.ChartSpec{
				ID:     domain.ChartPurchasesByAge,
				Kind:   domain.ChartKindLine,
				Title:  "Average Total Purchases by Age",
				Series: []domain.Series{{Name: "avg", Points: []domain.Point{{Label: "40", X: 40, Y: 6}}}},
				Options: domain.ChartOptions{
					Peak:       &domain.Marker{Label: "Peak", X: 40, Y: 6, Color: "red", Size: 12},
					ShowLegend: true,
				},
			},
		},
		{
			name: "donut with palette",
			spec: domain.ChartSpec{
				ID:     domain.ChartMaritalStatus,
				Kind:   domain.ChartKindDonut,
				Title:  "Marital Status Distribution",
				Series: []domain.Series{{Points: []domain.Point{{Label: "Married", Y: 3}, {Label: "Single", Y: 1}}}},
				Options: domain.ChartOptions{
					Hole:     0.5,
					TextInfo: "percent+label",
					Colors:   []string{"#FF9999", "#66B2FF"},
				},
			},
		},
		{
			name: "scatter with trendline",
			spec: domain.ChartSpec{
				ID:    domain.ChartIncomeVsSpending,
				Kind:  domain.ChartKindScatter,
				Title: "Income vs Total Spending",
				Series: []domain.Series{
					{Name: "Grad", Points: []domain.Point{{X: 1000, Y: 100}, {X: 3000, Y: 300}}},
					{Name: "PhD", Points: []domain.Point{{X: 2000, Y: 200}}},
				},
				Options: domain.ChartOptions{
					Opacity:    0.7,
					Trendlines: []domain.Trendline{{Series: "Grad", Slope: 0.1}},
					ShowLegend: true,
				},
			},
		},
	}

	r := NewRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			err := r.Render(tt.spec, &buf)

			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "output is not a PNG")
		})
	}
}

func TestRenderer_ShowLegend(t *testing.T) {
	tests := []struct {
		name        string
		spec        domain.ChartSpec
		wantChanged bool
	}{
		{
			name: "bar ignores the toggle",
			spec: domain.ChartSpec{
				ID:     domain.ChartSpendingByEducation,
				Kind:   domain.ChartKindBar,
				Series: []domain.Series{{Name: "avg", Points: []domain.Point{{Label: "PhD", Y: 300}, {Label: "Basic", Y: 200}}}},
			},
		},
		{
			name: "donut ignores the toggle",
			spec: domain.ChartSpec{
				ID:     domain.ChartMaritalStatus,
				Kind:   domain.ChartKindDonut,
				Series: []domain.Series{{Points: []domain.Point{{Label: "Married", Y: 3}, {Label: "Single", Y: 1}}}},
			},
		},
		{
			name: "scatter draws a legend",
			spec: domain.ChartSpec{
				ID:   domain.ChartIncomeVsSpending,
				Kind: domain.ChartKindScatter,
				Series: []domain.Series{
					{Name: "Grad", Points: []domain.Point{{X: 1000, Y: 100}, {X: 3000, Y: 300}}},
					{Name: "PhD", Points: []domain.Point{{X: 2000, Y: 200}}},
				},
			},
			wantChanged: true,
		},
	}

	r := NewRenderer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			hidden, shown := tt.spec, tt.spec
			shown.Options.ShowLegend = true
			var withoutLegend, withLegend bytes.Buffer

			// When
			require.NoError(t, r.Render(hidden, &withoutLegend))
			require.NoError(t, r.Render(shown, &withLegend))

			// Then
			assert.Equal(t, tt.wantChanged, !bytes.Equal(withoutLegend.Bytes(), withLegend.Bytes()))
		})
	}
}

func TestRenderer_Errors(t *testing.T) {
	r := NewRenderer()

	err := r.Render(domain.ChartSpec{ID: "x", Kind: domain.ChartKindBar}, &bytes.Buffer{})
	assert.ErrorIs(t, err, domain.ErrEmptyInput)

	err = r.Render(domain.ChartSpec{
		ID:     "x",
		Kind:   "heatmap",
		Series: []domain.Series{{Points: []domain.Point{{Y: 1}}}},
	}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unsupported chart kind")
}

func TestPaddedRange(t *testing.T) {
	r := paddedRange([]float64{5})
	assert.Less(t, r.Min, 5.0)
	assert.Greater(t, r.Max, 5.0)

	r = paddedRange([]float64{0, 100})
	assert.InDelta(t, -5.0, r.Min, 1e-9)
	assert.InDelta(t, 105.0, r.Max, 1e-9)

	r = paddedRange(nil)
	assert.Equal(t, 0.0, r.Min)
	assert.Equal(t, 1.0, r.Max)
}

func TestBlues(t *testing.T) {
	light := blues(0, 0, 10)
	dark := blues(10, 0, 10)
	assert.Greater(t, light.R, dark.R)
	assert.Equal(t, dark, blues(3, 3, 3))
}
