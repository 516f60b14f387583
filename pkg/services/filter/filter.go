package filter

import (
	"math"

	"github.com/de-tools/campaign-dash/pkg/models/domain"
)

// Validate rejects ranges whose lower bound exceeds the upper bound, and
// income bounds that are NaN or infinite. Bounds are never swapped silently.
func Validate(c domain.FilterCriteria) error {
	if c.AgeMin > c.AgeMax {
		return &domain.InvalidCriteriaError{Field: domain.ColumnAge, Min: float64(c.AgeMin), Max: float64(c.AgeMax)}
	}
	if !finite(c.IncomeMin) || !finite(c.IncomeMax) {
		return &domain.InvalidCriteriaError{
			Field:  domain.ColumnIncome,
			Min:    c.IncomeMin,
			Max:    c.IncomeMax,
			Reason: "bounds must be finite numbers",
		}
	}
	if c.IncomeMin > c.IncomeMax {
		return &domain.InvalidCriteriaError{Field: domain.ColumnIncome, Min: c.IncomeMin, Max: c.IncomeMax}
	}
	return nil
}

// Apply returns the records matching every criterion. Range bounds are
// inclusive on both ends; an empty allowed set admits nothing.
// The input slice is never modified and the result never aliases it.
func Apply(records []domain.Record, c domain.FilterCriteria) ([]domain.Record, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}

	view := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if Matches(r, c) {
			view = append(view, r)
		}
	}
	return view, nil
}

// Matches reports whether a single record satisfies all four predicates.
func Matches(r domain.Record, c domain.FilterCriteria) bool {
	if r.Age < c.AgeMin || r.Age > c.AgeMax {
		return false
	}
	if r.Income < c.IncomeMin || r.Income > c.IncomeMax {
		return false
	}
	if _, ok := c.AllowedEducation[r.Education]; !ok {
		return false
	}
	if _, ok := c.AllowedMarital[r.MaritalStatus]; !ok {
		return false
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
