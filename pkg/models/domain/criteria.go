package domain

// FilterCriteria is the set of user selections applied to one dashboard pass.
type FilterCriteria struct {
	AgeMin    int
	AgeMax    int
	IncomeMin float64
	IncomeMax float64

	AllowedEducation map[string]struct{}
	AllowedMarital   map[string]struct{}
}

// NewSet builds a membership set from a list of values.
func NewSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Bounds describes the observed ranges and categories of a dataset.
// It backs the range selector limits and the multi-select defaults.
type Bounds struct {
	AgeMin    int
	AgeMax    int
	IncomeMin float64
	IncomeMax float64

	Education     []string // first-seen order
	MaritalStatus []string // first-seen order
}
