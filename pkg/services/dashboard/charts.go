package dashboard

import (
	"errors"
	"strconv"
	"strings"

	"github.com/de-tools/campaign-dash/pkg/models/domain"
	"github.com/de-tools/campaign-dash/pkg/services/aggregate"
)

var donutPalette = []string{"#FF9999", "#66B2FF", "#99FF99", "#FFCC66"}

// chartBuilder turns one filtered view into chart specifications.
type chartBuilder struct {
	view       []domain.Record
	features   Features
	showLegend bool
}

func (b chartBuilder) build(id string) (domain.ChartSpec, error) {
	switch id {
	case domain.ChartSpendingByEducation:
		return b.spendingByEducation()
	case domain.ChartPurchasesByAge:
		return b.purchasesByAge()
	case domain.ChartMaritalStatus:
		return b.maritalStatus()
	case domain.ChartIncomeVsSpending:
		return b.incomeVsSpending()
	default:
		return domain.ChartSpec{}, domain.ErrUnknownChart
	}
}

func (b chartBuilder) spendingByEducation() (domain.ChartSpec, error) {
	order := domain.OrderKeyAsc
	if b.features.SortByValue {
		order = domain.OrderValueDesc
	}
	means, err := aggregate.MeanBy(b.view, domain.ColumnEducation, domain.ColumnTotalSpent, order)
	if err != nil {
		return domain.ChartSpec{}, err
	}

	spec := domain.ChartSpec{
		ID:     domain.ChartSpendingByEducation,
		Kind:   domain.ChartKindBar,
		Title:  "Average Total Spending by Education",
		XField: domain.ColumnEducation,
		YField: domain.ColumnTotalSpent,
		Series: []domain.Series{categorySeries("Average spending", means)},
		Options: domain.ChartOptions{
			ColorScale:   "Blues",
			ColorValues:  values(means),
			TextTemplate: "%{y:.2f}",
			TextPosition: "outside",
			ShowLegend:   b.legend(),
		},
		Enhancements: []domain.Enhancement{
			{Provenance: domain.ProvenanceAI, Description: "Color scale (Blues) keyed on average spending"},
			{Provenance: domain.ProvenanceStudent, Description: "Data labels on top of bars"},
		},
	}

	if b.features.SortByValue {
		spec.Enhancements = append(spec.Enhancements, domain.Enhancement{
			Provenance:  domain.ProvenanceStudent,
			Description: "Bars sorted by average spending, highest first",
		})
	}
	if b.features.ReferenceLine {
		mean, err := aggregate.OverallMean(means)
		if err != nil {
			return domain.ChartSpec{}, err
		}
		spec.Options.ReferenceLine = &mean
		spec.Enhancements = append(spec.Enhancements, domain.Enhancement{
			Provenance:  domain.ProvenanceAI,
			Description: "Reference line at the average across education levels",
		})
	}
	return spec, nil
}

func (b chartBuilder) purchasesByAge() (domain.ChartSpec, error) {
	means, err := aggregate.MeanBy(b.view, domain.ColumnAge, domain.ColumnTotalPurchases, domain.OrderKeyAsc)
	if err != nil {
		return domain.ChartSpec{}, err
	}
	peak, err := aggregate.Peak(means)
	if err != nil {
		return domain.ChartSpec{}, err
	}

	points := make([]domain.Point, 0, len(means))
	for _, gv := range means {
		age, _ := strconv.Atoi(gv.Key)
		points = append(points, domain.Point{Label: gv.Key, X: float64(age), Y: gv.Value})
	}
	peakAge, _ := strconv.Atoi(peak.Key)

	return domain.ChartSpec{
		ID:     domain.ChartPurchasesByAge,
		Kind:   domain.ChartKindLine,
		Title:  "Average Total Purchases by Age",
		XField: domain.ColumnAge,
		YField: domain.ColumnTotalPurchases,
		Series: []domain.Series{{Name: "Average purchases", Points: points}},
		Options: domain.ChartOptions{
			LineShape:  "spline",
			Peak:       &domain.Marker{Label: "Peak", X: float64(peakAge), Y: peak.Value, Color: "red", Size: 12},
			ShowLegend: b.legend(),
		},
		Enhancements: []domain.Enhancement{
			{Provenance: domain.ProvenanceAI, Description: "Smoothed spline line"},
			{Provenance: domain.ProvenanceStudent, Description: "Highlight of the highest purchase point"},
		},
	}, nil
}

func (b chartBuilder) maritalStatus() (domain.ChartSpec, error) {
	counts, err := aggregate.CountBy(b.view, domain.ColumnMaritalStatus, domain.OrderValueDesc)
	if err != nil {
		return domain.ChartSpec{}, err
	}

	return domain.ChartSpec{
		ID:     domain.ChartMaritalStatus,
		Kind:   domain.ChartKindDonut,
		Title:  "Marital Status Distribution",
		XField: domain.ColumnMaritalStatus,
		YField: "Count",
		Series: []domain.Series{categorySeries("Customers", counts)},
		Options: domain.ChartOptions{
			Hole:         0.5,
			TextPosition: "inside",
			TextInfo:     "percent+label",
			Colors:       append([]string(nil), donutPalette...),
			ShowLegend:   b.legend(),
		},
		Enhancements: []domain.Enhancement{
			{Provenance: domain.ProvenanceAI, Description: "Percentage and label shown inside slices"},
			{Provenance: domain.ProvenanceStudent, Description: "Custom colors for aesthetic consistency"},
		},
	}, nil
}

func (b chartBuilder) incomeVsSpending() (domain.ChartSpec, error) {
	if len(b.view) == 0 {
		return domain.ChartSpec{}, domain.ErrEmptyInput
	}

	var order []string
	byEducation := make(map[string]*domain.Series)
	for _, r := range b.view {
		s, ok := byEducation[r.Education]
		if !ok {
			s = &domain.Series{Name: r.Education}
			byEducation[r.Education] = s
			order = append(order, r.Education)
		}
		s.Points = append(s.Points, domain.Point{Label: strconv.Itoa(r.ID), X: r.Income, Y: r.TotalSpent})
	}

	series := make([]domain.Series, 0, len(order))
	var trends []domain.Trendline
	for _, name := range order {
		s := *byEducation[name]
		series = append(series, s)

		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i], ys[i] = p.X, p.Y
		}
		slope, intercept, err := aggregate.LinearFit(xs, ys)
		if errors.Is(err, aggregate.ErrDegenerateFit) {
			continue
		}
		if err != nil {
			return domain.ChartSpec{}, err
		}
		trends = append(trends, domain.Trendline{Series: name, Slope: slope, Intercept: intercept})
	}

	spec := domain.ChartSpec{
		ID:         domain.ChartIncomeVsSpending,
		Kind:       domain.ChartKindScatter,
		Title:      "Income vs Total Spending (Colored by Education)",
		XField:     domain.ColumnIncome,
		YField:     domain.ColumnTotalSpent,
		ColorField: domain.ColumnEducation,
		Series:     series,
		Options: domain.ChartOptions{
			Opacity:    0.7,
			Trendlines: trends,
			HoverTemplate: strings.Join([]string{
				"Income: %{x}",
				"Total Spent: %{y}",
				"Education: %{fullData.name}",
			}, "<br>"),
			RangeSlider: b.features.RangeSlider,
			ShowLegend:  b.legend(),
		},
		Enhancements: []domain.Enhancement{
			{Provenance: domain.ProvenanceAI, Description: "OLS regression trendline per education level"},
			{Provenance: domain.ProvenanceStudent, Description: "Hover tooltips with income, spending and education"},
		},
	}
	if b.features.RangeSlider {
		spec.Enhancements = append(spec.Enhancements, domain.Enhancement{
			Provenance:  domain.ProvenanceAI,
			Description: "Range slider on the income axis",
		})
	}
	return spec, nil
}

func (b chartBuilder) legend() bool {
	if !b.features.LegendToggle {
		return true
	}
	return b.showLegend
}

func categorySeries(name string, seq []domain.GroupValue) domain.Series {
	points := make([]domain.Point, 0, len(seq))
	for _, gv := range seq {
		points = append(points, domain.Point{Label: gv.Key, Y: gv.Value})
	}
	return domain.Series{Name: name, Points: points}
}

func values(seq []domain.GroupValue) []float64 {
	out := make([]float64, len(seq))
	for i, gv := range seq {
		out[i] = gv.Value
	}
	return out
}
