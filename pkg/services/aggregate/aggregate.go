package aggregate

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/de-tools/campaign-dash/pkg/models/domain"
)

// MeanBy averages valueCol per distinct groupCol value in the view.
// Groups absent from the view are absent from the result.
func MeanBy(view []domain.Record, groupCol, valueCol string, order domain.Order) ([]domain.GroupValue, error) {
	if len(view) == 0 {
		return nil, fmt.Errorf("mean of %s by %s: %w", valueCol, groupCol, domain.ErrEmptyInput)
	}

	keys := make([]string, 0)
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, r := range view {
		key, err := r.Dimension(groupCol)
		if err != nil {
			return nil, err
		}
		value, err := r.Measure(valueCol)
		if err != nil {
			return nil, err
		}
		if _, seen := counts[key]; !seen {
			keys = append(keys, key)
		}
		sums[key] += value
		counts[key]++
	}

	result := make([]domain.GroupValue, 0, len(keys))
	for _, key := range keys {
		result = append(result, domain.GroupValue{
			Key:   key,
			Value: sums[key] / float64(counts[key]),
		})
	}

	Sort(result, order)
	return result, nil
}

// CountBy counts records per distinct groupCol value in the view.
func CountBy(view []domain.Record, groupCol string, order domain.Order) ([]domain.GroupValue, error) {
	if len(view) == 0 {
		return nil, fmt.Errorf("count by %s: %w", groupCol, domain.ErrEmptyInput)
	}

	keys := make([]string, 0)
	counts := make(map[string]int)

	for _, r := range view {
		key, err := r.Dimension(groupCol)
		if err != nil {
			return nil, err
		}
		if _, seen := counts[key]; !seen {
			keys = append(keys, key)
		}
		counts[key]++
	}

	result := make([]domain.GroupValue, 0, len(keys))
	for _, key := range keys {
		result = append(result, domain.GroupValue{Key: key, Value: float64(counts[key])})
	}

	Sort(result, order)
	return result, nil
}

// Peak returns the entry with the largest value. Ties resolve to the first occurrence.
func Peak(seq []domain.GroupValue) (domain.GroupValue, error) {
	if len(seq) == 0 {
		return domain.GroupValue{}, fmt.Errorf("peak: %w", domain.ErrEmptyInput)
	}

	best := seq[0]
	for _, gv := range seq[1:] {
		if gv.Value > best.Value {
			best = gv
		}
	}
	return best, nil
}

// OverallMean is the arithmetic mean of the per-group values, not of the raw records.
func OverallMean(seq []domain.GroupValue) (float64, error) {
	if len(seq) == 0 {
		return 0, fmt.Errorf("overall mean: %w", domain.ErrEmptyInput)
	}

	var total float64
	for _, gv := range seq {
		total += gv.Value
	}
	return total / float64(len(seq)), nil
}

// Sort arranges seq in place. OrderFirstSeen leaves it untouched.
func Sort(seq []domain.GroupValue, order domain.Order) {
	switch order {
	case domain.OrderValueDesc:
		numeric := numericKeys(seq)
		sort.SliceStable(seq, func(i, j int) bool {
			if seq[i].Value != seq[j].Value {
				return seq[i].Value > seq[j].Value
			}
			return keyLess(seq[i].Key, seq[j].Key, numeric)
		})
	case domain.OrderKeyAsc:
		numeric := numericKeys(seq)
		sort.SliceStable(seq, func(i, j int) bool {
			return keyLess(seq[i].Key, seq[j].Key, numeric)
		})
	default:
		// keep first-seen order
	}
}

func numericKeys(seq []domain.GroupValue) bool {
	for _, gv := range seq {
		if _, err := strconv.Atoi(gv.Key); err != nil {
			return false
		}
	}
	return true
}

func keyLess(a, b string, numeric bool) bool {
	if numeric {
		ai, _ := strconv.Atoi(a)
		bi, _ := strconv.Atoi(b)
		return ai < bi
	}
	return a < b
}
