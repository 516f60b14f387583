package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyInput signals that a filter pass or an aggregation had no rows to work with.
var ErrEmptyInput = errors.New("no records match the current filters")

// ErrUnknownChart is returned when a chart id does not name a dashboard panel.
var ErrUnknownChart = errors.New("unknown chart")

// InvalidCriteriaError reports a range whose lower bound exceeds its upper
// bound, or whose bounds are not finite numbers.
type InvalidCriteriaError struct {
	Field  string
	Min    float64
	Max    float64
	Reason string
}

func (e *InvalidCriteriaError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s range: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s range: min %v is greater than max %v", e.Field, e.Min, e.Max)
}

// UnknownColumnError reports a grouping or value column the dataset does not carry.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q", e.Column)
}

// SchemaError reports a dataset that does not match the expected layout.
type SchemaError struct {
	Column string
	Row    int // 1-based data row, 0 for header problems
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("dataset schema mismatch: column %q %s", e.Column, e.Reason)
	}
	return fmt.Sprintf("dataset row %d: column %q %s", e.Row, e.Column, e.Reason)
}
