package api

type Filters struct {
	AgeMin        int      `json:"age_min"`
	AgeMax        int      `json:"age_max"`
	IncomeMin     float64  `json:"income_min"`
	IncomeMax     float64  `json:"income_max"`
	Education     []string `json:"education"`
	MaritalStatus []string `json:"marital_status"`
}

type Dashboard struct {
	RecordCount int         `json:"record_count"`
	Criteria    Filters     `json:"criteria"`
	Notice      string      `json:"notice,omitempty"`
	Charts      []ChartSpec `json:"charts"`
}

type ChartSpec struct {
	ID           string        `json:"id"`
	Kind         string        `json:"kind"`
	Title        string        `json:"title"`
	XField       string        `json:"x"`
	YField       string        `json:"y"`
	ColorField   string        `json:"color,omitempty"`
	Series       []Series      `json:"series"`
	Options      ChartOptions  `json:"options"`
	Enhancements []Enhancement `json:"enhancements"`
}

type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

type Point struct {
	Label string  `json:"label,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type ChartOptions struct {
	ColorScale    string      `json:"color_scale,omitempty"`
	ColorValues   []float64   `json:"color_values,omitempty"`
	Colors        []string    `json:"colors,omitempty"`
	LineShape     string      `json:"line_shape,omitempty"`
	TextTemplate  string      `json:"text_template,omitempty"`
	TextPosition  string      `json:"text_position,omitempty"`
	TextInfo      string      `json:"text_info,omitempty"`
	Hole          float64     `json:"hole,omitempty"`
	Opacity       float64     `json:"opacity,omitempty"`
	HoverTemplate string      `json:"hover_template,omitempty"`
	ReferenceLine *float64    `json:"reference_line,omitempty"`
	Peak          *Marker     `json:"peak,omitempty"`
	Trendlines    []Trendline `json:"trendlines,omitempty"`
	RangeSlider   bool        `json:"range_slider"`
	ShowLegend    bool        `json:"show_legend"`
}

type Marker struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
	Size  int     `json:"size"`
}

type Trendline struct {
	Series    string  `json:"series"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

type Enhancement struct {
	Provenance  string `json:"provenance"`
	Description string `json:"description"`
}

type Error struct {
	Error string `json:"error"`
}
