package domain

// ChartKind names the rendering primitive for a chart panel.
type ChartKind string

const (
	ChartKindBar     ChartKind = "bar"
	ChartKindLine    ChartKind = "line"
	ChartKindDonut   ChartKind = "donut"
	ChartKindScatter ChartKind = "scatter"
)

// Chart panel identifiers, stable across requests.
const (
	ChartSpendingByEducation = "spending-by-education"
	ChartPurchasesByAge      = "purchases-by-age"
	ChartMaritalStatus       = "marital-status"
	ChartIncomeVsSpending    = "income-vs-spending"
)

// ChartIDs lists the dashboard panels in display order.
var ChartIDs = []string{
	ChartSpendingByEducation,
	ChartPurchasesByAge,
	ChartMaritalStatus,
	ChartIncomeVsSpending,
}

// Provenance labels who proposed an enhancement.
type Provenance string

const (
	ProvenanceAI      Provenance = "ai"
	ProvenanceStudent Provenance = "student"
)

// Enhancement documents a display tweak applied on top of a base chart.
type Enhancement struct {
	Provenance  Provenance
	Description string
}

// Point is a single plotted value. X is set for numeric axes, Label for categorical ones.
type Point struct {
	Label string
	X     float64
	Y     float64
}

// Series is a named sequence of points.
type Series struct {
	Name   string
	Points []Point
}

// Trendline is a fitted y = Intercept + Slope*x for one series.
type Trendline struct {
	Series    string
	Slope     float64
	Intercept float64
}

// Marker highlights a single point, e.g. the peak of a line chart.
type Marker struct {
	Label string
	X     float64
	Y     float64
	Color string
	Size  int
}

// ChartOptions carries display settings handed to the renderer.
// ColorValues holds the values a ColorScale is keyed on.
type ChartOptions struct {
	ColorScale    string
	ColorValues   []float64
	Colors        []string
	LineShape     string
	TextTemplate  string
	TextPosition  string
	TextInfo      string
	Hole          float64
	Opacity       float64
	HoverTemplate string
	ReferenceLine *float64
	Peak          *Marker
	Trendlines    []Trendline
	RangeSlider   bool
	ShowLegend    bool
}

// ChartSpec is a render-ready description of one dashboard panel.
type ChartSpec struct {
	ID           string
	Kind         ChartKind
	Title        string
	XField       string
	YField       string
	ColorField   string
	Series       []Series
	Options      ChartOptions
	Enhancements []Enhancement
}
