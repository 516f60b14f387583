package adapters

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/de-tools/campaign-dash/pkg/models/domain"
)

const reportTitle = "Marketing Campaign Dashboard"

func MapDashboardDomainToReport(d domain.Dashboard, variant string) domain.Report {
	filters := MapCriteriaDomainToApi(d.Criteria)
	report := domain.Report{
		Title:       reportTitle,
		Variant:     variant,
		RecordCount: d.RecordCount,
		Notice:      d.Notice,
		Filters: []domain.ReportDetail{
			{Name: "Age", Value: fmt.Sprintf("%d - %d", filters.AgeMin, filters.AgeMax), Unit: "years"},
			{Name: "Income", Value: fmt.Sprintf("%.0f - %.0f", filters.IncomeMin, filters.IncomeMax)},
			{Name: "Education", Value: listOrNone(filters.Education)},
			{Name: "Marital Status", Value: listOrNone(filters.MaritalStatus)},
		},
	}

	for _, c := range d.Charts {
		report.Sections = append(report.Sections, mapChartToSection(c))
	}
	return report
}

func mapChartToSection(c domain.ChartSpec) domain.ReportSection {
	section := domain.ReportSection{
		Title:   c.Title,
		Kind:    string(c.Kind),
		Summary: map[string]string{},
	}
	for _, e := range c.Enhancements {
		section.Enhancements = append(section.Enhancements, fmt.Sprintf("[%s] %s", e.Provenance, e.Description))
	}

	switch c.Kind {
	case domain.ChartKindScatter:
		points := 0
		for _, s := range c.Series {
			points += len(s.Points)
			section.Details = append(section.Details, domain.ReportDetail{
				Name:        s.Name,
				Value:       strconv.Itoa(len(s.Points)),
				Unit:        "customers",
				Description: trendlineFor(c.Options.Trendlines, s.Name),
			})
		}
		section.Summary["Points"] = strconv.Itoa(points)
	default:
		var total float64
		for _, s := range c.Series {
			for _, p := range s.Points {
				total += p.Y
				section.Details = append(section.Details, domain.ReportDetail{
					Name:        p.Label,
					Value:       formatValue(c.Kind, p.Y),
					Unit:        unitFor(c.Kind),
					Description: c.YField,
				})
			}
		}
		if c.Kind == domain.ChartKindDonut {
			section.Summary["Total"] = strconv.FormatFloat(total, 'f', 0, 64)
		}
	}

	if c.Options.ReferenceLine != nil {
		section.Summary["Overall mean"] = fmt.Sprintf("%.2f", *c.Options.ReferenceLine)
	}
	if c.Options.Peak != nil {
		section.Summary["Peak"] = fmt.Sprintf("%s %.0f (%.2f)", c.XField, c.Options.Peak.X, c.Options.Peak.Y)
	}
	return section
}

func trendlineFor(lines []domain.Trendline, series string) string {
	for _, t := range lines {
		if t.Series == series {
			return fmt.Sprintf("trend: y = %.4f x %+.2f", t.Slope, t.Intercept)
		}
	}
	return ""
}

func formatValue(kind domain.ChartKind, v float64) string {
	if kind == domain.ChartKindDonut {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return fmt.Sprintf("%.2f", v)
}

func unitFor(kind domain.ChartKind) string {
	if kind == domain.ChartKindDonut {
		return "customers"
	}
	return ""
}

func listOrNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
