package analyzer

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Line is a first-degree least-squares fit of one plotted series
type Line struct {
	Slope     float64
	Intercept float64
	// R2 is the coefficient of determination, clamped to [0, 1]
	R2 float64
}

// Fit computes the degree-1 least-squares fit of ys against xs. A series
// with no spread in x (every sample taken at the same workload level)
// degenerates to the horizontal line through the mean of ys.
func Fit(xs, ys []float64) Line {
	if len(xs) == 0 || len(xs) != len(ys) {
		return Line{}
	}
	if !varies(xs) {
		return Line{Intercept: stat.Mean(ys, nil)}
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	r2 := stat.RSquared(xs, ys, nil, intercept, slope)

	// Clamp R² between 0 and 1; a series with zero variance yields NaN
	if math.IsNaN(r2) || r2 < 0 {
		r2 = 0
	} else if r2 > 1 {
		r2 = 1
	}

	return Line{Slope: slope, Intercept: intercept, R2: r2}
}

// At evaluates the fitted line at x
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// Equation renders the fit coefficients for a legend entry, e.g.
// "13.2x + 40.1"
func (l Line) Equation() string {
	sign := "+"
	intercept := l.Intercept
	if intercept < 0 {
		sign = "-"
		intercept = -intercept
	}
	return fmt.Sprintf("%.4gx %s %.4g", l.Slope, sign, intercept)
}

// varies reports whether xs contains at least two distinct values
func varies(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return true
		}
	}
	return false
}
