package domain

// Dashboard is the outcome of one recomputation pass.
// Notice is set, and Charts left empty, when the filters match nothing.
type Dashboard struct {
	RecordCount int
	Criteria    FilterCriteria
	Charts      []ChartSpec
	Notice      string
}

// Empty reports whether the pass short-circuited on an empty view.
func (d *Dashboard) Empty() bool {
	return d.Notice != ""
}

// Chart returns the panel with the given id.
func (d *Dashboard) Chart(id string) (ChartSpec, bool) {
	for _, c := range d.Charts {
		if c.ID == id {
			return c, true
		}
	}
	return ChartSpec{}, false
}
