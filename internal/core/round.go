package core

import "math"

// Round rounds v to the given number of decimal places, half away from zero.
// Only reported values are rounded; accumulation uses the raw values.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
