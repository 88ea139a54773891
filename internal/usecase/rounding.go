package usecase

import (
	"math"
	"strconv"
)

// roundTo rounds x half away from zero at the given number of decimal places.
// The scaled value is trimmed to 12 significant digits before rounding so
// that binary noise (0.3*1.5*10 = 4.4999999999999996) does not pull a
// decimal half down.
func roundTo(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	scale := math.Pow(10, float64(places))
	scaled := x * scale
	if trimmed, err := strconv.ParseFloat(strconv.FormatFloat(scaled, 'g', 12, 64), 64); err == nil {
		scaled = trimmed
	}
	return math.Round(scaled) / scale
}

// roundInt rounds x half away from zero to the nearest integer.
func roundInt(x float64) int {
	return int(roundTo(x, 0))
}
