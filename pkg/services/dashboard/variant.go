package dashboard

import (
	"fmt"
	"strings"
)

// Variant names one historical revision of the dashboard.
type Variant string

const (
	VariantBasic    Variant = "basic"
	VariantEnhanced Variant = "enhanced"
	VariantFull     Variant = "full"
)

// Features toggles the behavior that drifted between revisions.
type Features struct {
	// EmptyGuard replaces the charts with a notice when no record matches.
	EmptyGuard bool
	// ReferenceLine draws the overall mean across the spending bars.
	ReferenceLine bool
	// RangeSlider adds an x-axis range slider to the scatter plot.
	RangeSlider bool
	// SortByValue orders the spending bars by value instead of by key.
	SortByValue bool
	// LegendToggle honors the per-request legend switch; otherwise legends always show.
	LegendToggle bool
}

func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantBasic, VariantEnhanced, VariantFull:
		return v, nil
	case "":
		return VariantFull, nil
	default:
		return "", fmt.Errorf("unknown dashboard variant %q", s)
	}
}

func (v Variant) Features() Features {
	switch v {
	case VariantBasic:
		return Features{}
	case VariantEnhanced:
		return Features{EmptyGuard: true, ReferenceLine: true, RangeSlider: true}
	default:
		return Features{EmptyGuard: true, ReferenceLine: true, RangeSlider: true, SortByValue: true, LegendToggle: true}
	}
}
