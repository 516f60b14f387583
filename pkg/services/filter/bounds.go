package filter

import (
	"fmt"

	"github.com/de-tools/campaign-dash/pkg/models/domain"
)

// Bounds scans the dataset for the observed ranges and categories.
func Bounds(records []domain.Record) (domain.Bounds, error) {
	if len(records) == 0 {
		return domain.Bounds{}, fmt.Errorf("dataset bounds: %w", domain.ErrEmptyInput)
	}

	b := domain.Bounds{
		AgeMin:    records[0].Age,
		AgeMax:    records[0].Age,
		IncomeMin: records[0].Income,
		IncomeMax: records[0].Income,
	}
	seenEducation := make(map[string]bool)
	seenMarital := make(map[string]bool)

	for _, r := range records {
		b.AgeMin = min(b.AgeMin, r.Age)
		b.AgeMax = max(b.AgeMax, r.Age)
		b.IncomeMin = min(b.IncomeMin, r.Income)
		b.IncomeMax = max(b.IncomeMax, r.Income)

		if !seenEducation[r.Education] {
			seenEducation[r.Education] = true
			b.Education = append(b.Education, r.Education)
		}
		if !seenMarital[r.MaritalStatus] {
			seenMarital[r.MaritalStatus] = true
			b.MaritalStatus = append(b.MaritalStatus, r.MaritalStatus)
		}
	}

	return b, nil
}

// DefaultCriteria selects the full observed range and every category,
// the state the sidebar starts in.
func DefaultCriteria(b domain.Bounds) domain.FilterCriteria {
	return domain.FilterCriteria{
		AgeMin:           b.AgeMin,
		AgeMax:           b.AgeMax,
		IncomeMin:        b.IncomeMin,
		IncomeMax:        b.IncomeMax,
		AllowedEducation: domain.NewSet(b.Education...),
		AllowedMarital:   domain.NewSet(b.MaritalStatus...),
	}
}
