package aggregate

import (
	"errors"
	"fmt"
)

// ErrDegenerateFit is returned when the x values do not vary, so no line can be fitted.
var ErrDegenerateFit = errors.New("x values have zero variance")

// LinearFit computes the ordinary least squares line y = intercept + slope*x.
func LinearFit(xs, ys []float64) (slope, intercept float64, err error) {
	if len(xs) != len(ys) {
		return 0, 0, fmt.Errorf("linear fit: %d x values for %d y values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return 0, 0, fmt.Errorf("linear fit needs at least 2 points, got %d: %w", len(xs), ErrDegenerateFit)
	}

	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var sxx, sxy float64
	for i := range xs {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
	}
	if sxx == 0 {
		return 0, 0, ErrDegenerateFit
	}

	slope = sxy / sxx
	intercept = meanY - slope*meanX
	return slope, intercept, nil
}
