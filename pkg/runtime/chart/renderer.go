package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/de-tools/campaign-dash/pkg/models/domain"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	defaultWidth  = 960
	defaultHeight = 540
)

var seriesPalette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// Renderer draws chart specifications as PNG images.
type Renderer struct {
	Width  int
	Height int
}

func NewRenderer() *Renderer {
	return &Renderer{Width: defaultWidth, Height: defaultHeight}
}

// Render writes spec as a PNG. Options.ShowLegend applies to line and
// scatter charts only: go-chart bar and donut charts have no legend element,
// so their category names are drawn as axis or slice labels instead.
func (r *Renderer) Render(spec domain.ChartSpec, w io.Writer) error {
	if len(spec.Series) == 0 || len(spec.Series[0].Points) == 0 {
		return fmt.Errorf("chart %s has no data: %w", spec.ID, domain.ErrEmptyInput)
	}

	var err error
	switch spec.Kind {
	case domain.ChartKindBar:
		err = r.bar(spec).Render(gochart.PNG, w)
	case domain.ChartKindLine:
		ch := r.line(spec)
		err = ch.Render(gochart.PNG, w)
	case domain.ChartKindDonut:
		err = r.donut(spec).Render(gochart.PNG, w)
	case domain.ChartKindScatter:
		ch := r.scatter(spec)
		err = ch.Render(gochart.PNG, w)
	default:
		return fmt.Errorf("unsupported chart kind %q", spec.Kind)
	}
	if err != nil {
		return fmt.Errorf("failed to render chart %s: %w", spec.ID, err)
	}
	return nil
}

func (r *Renderer) bar(spec domain.ChartSpec) gochart.BarChart {
	points := spec.Series[0].Points
	lo, hi := yExtent(spec.Series)

	bars := make([]gochart.Value, 0, len(points))
	for i, p := range points {
		color := hexColor(seriesPalette[0])
		if spec.Options.ColorScale != "" && i < len(spec.Options.ColorValues) {
			color = blues(spec.Options.ColorValues[i], lo, hi)
		}
		bars = append(bars, gochart.Value{
			Label: p.Label,
			Value: p.Y,
			Style: gochart.Style{FillColor: color, StrokeColor: color},
		})
	}

	title := spec.Title
	if spec.Options.ReferenceLine != nil {
		title = fmt.Sprintf("%s (avg %.2f)", title, *spec.Options.ReferenceLine)
	}

	return gochart.BarChart{
		Title:      title,
		Width:      r.Width,
		Height:     r.Height,
		BarWidth:   max(8, r.Width/(2*len(bars)+1)),
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis: gochart.YAxis{
			Name:  spec.YField,
			Range: &gochart.ContinuousRange{Min: 0, Max: headroom(math.Max(hi, 0))},
		},
		Bars: bars,
	}
}

func (r *Renderer) line(spec domain.ChartSpec) *gochart.Chart {
	points := spec.Series[0].Points
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}

	series := []gochart.Series{
		gochart.ContinuousSeries{
			Name:    spec.Series[0].Name,
			XValues: xs,
			YValues: ys,
			Style:   gochart.Style{StrokeColor: hexColor(seriesPalette[0]), StrokeWidth: 2},
		},
	}
	if peak := spec.Options.Peak; peak != nil {
		color := namedColor(peak.Color)
		series = append(series,
			gochart.ContinuousSeries{
				Name:    peak.Label,
				XValues: []float64{peak.X},
				YValues: []float64{peak.Y},
				Style:   gochart.Style{StrokeWidth: gochart.Disabled, DotWidth: float64(peak.Size) / 2, DotColor: color},
			},
			gochart.AnnotationSeries{
				Annotations: []gochart.Value2{{XValue: peak.X, YValue: peak.Y, Label: peak.Label}},
			},
		)
	}

	ch := &gochart.Chart{
		Title:      spec.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      gochart.XAxis{Name: spec.XField, Range: paddedRange(xs)},
		YAxis:      gochart.YAxis{Name: spec.YField, Range: paddedRange(ys)},
		Series:     series,
	}
	if spec.Options.ShowLegend {
		ch.Elements = []gochart.Renderable{gochart.Legend(ch)}
	}
	return ch
}

func (r *Renderer) donut(spec domain.ChartSpec) gochart.DonutChart {
	points := spec.Series[0].Points
	var total float64
	for _, p := range points {
		total += p.Y
	}

	values := make([]gochart.Value, 0, len(points))
	for i, p := range points {
		palette := spec.Options.Colors
		if len(palette) == 0 {
			palette = seriesPalette
		}
		label := p.Label
		if strings.Contains(spec.Options.TextInfo, "percent") && total > 0 {
			label = fmt.Sprintf("%s %.1f%%", p.Label, 100*p.Y/total)
		}
		color := hexColor(palette[i%len(palette)])
		values = append(values, gochart.Value{
			Label: label,
			Value: p.Y,
			Style: gochart.Style{FillColor: color, StrokeColor: drawing.ColorWhite},
		})
	}

	return gochart.DonutChart{
		Title:  spec.Title,
		Width:  r.Width,
		Height: r.Height,
		Values: values,
	}
}

func (r *Renderer) scatter(spec domain.ChartSpec) *gochart.Chart {
	alpha := uint8(255)
	if spec.Options.Opacity > 0 && spec.Options.Opacity < 1 {
		alpha = uint8(math.Round(255 * spec.Options.Opacity))
	}

	var allX, allY []float64
	series := make([]gochart.Series, 0, len(spec.Series)+len(spec.Options.Trendlines))
	colors := make(map[string]drawing.Color, len(spec.Series))
	for i, s := range spec.Series {
		color := hexColor(seriesPalette[i%len(seriesPalette)])
		colors[s.Name] = color
		dot := color.WithAlpha(alpha)

		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for j, p := range s.Points {
			xs[j], ys[j] = p.X, p.Y
		}
		allX = append(allX, xs...)
		allY = append(allY, ys...)

		series = append(series, gochart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   gochart.Style{StrokeWidth: gochart.Disabled, DotWidth: 3, DotColor: dot},
		})
	}

	xr := paddedRange(allX)
	for _, t := range spec.Options.Trendlines {
		x0, x1 := xr.Min, xr.Max
		series = append(series, gochart.ContinuousSeries{
			Name:    t.Series + " trend",
			XValues: []float64{x0, x1},
			YValues: []float64{t.Intercept + t.Slope*x0, t.Intercept + t.Slope*x1},
			Style:   gochart.Style{StrokeColor: colors[t.Series], StrokeWidth: 1.5},
		})
		allY = append(allY, t.Intercept+t.Slope*x0, t.Intercept+t.Slope*x1)
	}

	ch := &gochart.Chart{
		Title:      spec.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      gochart.XAxis{Name: spec.XField, Range: xr},
		YAxis:      gochart.YAxis{Name: spec.YField, Range: paddedRange(allY)},
		Series:     series,
	}
	if spec.Options.ShowLegend {
		ch.Elements = []gochart.Renderable{gochart.Legend(ch)}
	}
	return ch
}

// paddedRange widens the observed extent so single points and flat lines still have a drawable range.
func paddedRange(values []float64) *gochart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if len(values) == 0 {
		return &gochart.ContinuousRange{Min: 0, Max: 1}
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = math.Max(math.Abs(hi)*0.1, 1)
	}
	return &gochart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func headroom(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v * 1.15
}

func yExtent(series []domain.Series) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, p := range s.Points {
			lo = math.Min(lo, p.Y)
			hi = math.Max(hi, p.Y)
		}
	}
	return lo, hi
}

// blues maps v onto a light-to-dark blue ramp over [lo, hi].
func blues(v, lo, hi float64) drawing.Color {
	t := 1.0
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	light := drawing.Color{R: 198, G: 219, B: 239, A: 255}
	dark := drawing.Color{R: 8, G: 48, B: 107, A: 255}
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + t*(float64(b)-float64(a))))
	}
	return drawing.Color{R: mix(light.R, dark.R), G: mix(light.G, dark.G), B: mix(light.B, dark.B), A: 255}
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func namedColor(name string) drawing.Color {
	switch strings.ToLower(name) {
	case "red":
		return drawing.ColorRed
	case "blue":
		return drawing.ColorBlue
	case "green":
		return drawing.ColorGreen
	case "":
		return drawing.ColorBlack
	default:
		return hexColor(name)
	}
}
