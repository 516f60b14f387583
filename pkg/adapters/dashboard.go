package adapters

import (
	"slices"

	"github.com/de-tools/campaign-dash/pkg/models/api"
	"github.com/de-tools/campaign-dash/pkg/models/domain"
)

func MapBoundsDomainToApi(b domain.Bounds) api.Filters {
	return api.Filters{
		AgeMin:        b.AgeMin,
		AgeMax:        b.AgeMax,
		IncomeMin:     b.IncomeMin,
		IncomeMax:     b.IncomeMax,
		Education:     append([]string{}, b.Education...),
		MaritalStatus: append([]string{}, b.MaritalStatus...),
	}
}

// MapCriteriaDomainToApi lists the allowed categories sorted, since sets carry no order.
func MapCriteriaDomainToApi(c domain.FilterCriteria) api.Filters {
	return api.Filters{
		AgeMin:        c.AgeMin,
		AgeMax:        c.AgeMax,
		IncomeMin:     c.IncomeMin,
		IncomeMax:     c.IncomeMax,
		Education:     sortedKeys(c.AllowedEducation),
		MaritalStatus: sortedKeys(c.AllowedMarital),
	}
}

func MapDashboardDomainToApi(d domain.Dashboard) api.Dashboard {
	resp := api.Dashboard{
		RecordCount: d.RecordCount,
		Criteria:    MapCriteriaDomainToApi(d.Criteria),
		Notice:      d.Notice,
		Charts:      []api.ChartSpec{},
	}
	for _, c := range d.Charts {
		resp.Charts = append(resp.Charts, MapChartSpecDomainToApi(c))
	}
	return resp
}

func MapChartSpecDomainToApi(c domain.ChartSpec) api.ChartSpec {
	spec := api.ChartSpec{
		ID:           c.ID,
		Kind:         string(c.Kind),
		Title:        c.Title,
		XField:       c.XField,
		YField:       c.YField,
		ColorField:   c.ColorField,
		Series:       []api.Series{},
		Options:      mapChartOptions(c.Options),
		Enhancements: []api.Enhancement{},
	}
	for _, s := range c.Series {
		series := api.Series{Name: s.Name, Points: make([]api.Point, 0, len(s.Points))}
		for _, p := range s.Points {
			series.Points = append(series.Points, api.Point{Label: p.Label, X: p.X, Y: p.Y})
		}
		spec.Series = append(spec.Series, series)
	}
	for _, e := range c.Enhancements {
		spec.Enhancements = append(spec.Enhancements, api.Enhancement{
			Provenance:  string(e.Provenance),
			Description: e.Description,
		})
	}
	return spec
}

func mapChartOptions(o domain.ChartOptions) api.ChartOptions {
	opts := api.ChartOptions{
		ColorScale:    o.ColorScale,
		ColorValues:   slices.Clone(o.ColorValues),
		Colors:        slices.Clone(o.Colors),
		LineShape:     o.LineShape,
		TextTemplate:  o.TextTemplate,
		TextPosition:  o.TextPosition,
		TextInfo:      o.TextInfo,
		Hole:          o.Hole,
		Opacity:       o.Opacity,
		HoverTemplate: o.HoverTemplate,
		RangeSlider:   o.RangeSlider,
		ShowLegend:    o.ShowLegend,
	}
	if o.ReferenceLine != nil {
		v := *o.ReferenceLine
		opts.ReferenceLine = &v
	}
	if o.Peak != nil {
		opts.Peak = &api.Marker{
			Label: o.Peak.Label,
			X:     o.Peak.X,
			Y:     o.Peak.Y,
			Color: o.Peak.Color,
			Size:  o.Peak.Size,
		}
	}
	for _, t := range o.Trendlines {
		opts.Trendlines = append(opts.Trendlines, api.Trendline{
			Series:    t.Series,
			Slope:     t.Slope,
			Intercept: t.Intercept,
		})
	}
	return opts
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
