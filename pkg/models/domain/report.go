package domain

// Report is a printable summary of one dashboard pass.
type Report struct {
	Title       string
	Variant     string
	RecordCount int
	Filters     []ReportDetail
	Notice      string
	Sections    []ReportSection
}

// ReportSection summarizes a single chart panel.
type ReportSection struct {
	Title        string
	Kind         string
	Summary      map[string]string
	Details      []ReportDetail
	Enhancements []string
}

// ReportDetail is one row of a section, e.g. a bar or a donut slice.
type ReportDetail struct {
	Name        string
	Value       string
	Unit        string
	Description string
}
