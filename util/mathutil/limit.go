package mathutil

import "math"

func LimitFloat64(v float64, min, max float64) float64 {
	if v < min {
		return min
	} else if v > max {
		return max
	}
	return v
}
func LimitInt(v int, min, max int) int {
	if v < min {
		return min
	} else if v > max {
		return max
	}
	return v
}

func Biggest(a, b int) int {
	if a > b {
		return a
	}
	return b
}

//----------

// Rounds to the nearest int, half away from zero.
func RoundInt(v float64) int {
	return int(math.Round(v))
}

// Reports whether v is a usable measurement (not NaN/Inf).
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
