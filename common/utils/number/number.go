package number

import (
	"math"
	"strconv"
)

var epsilon float64 = 0.000001

func IsZero(f float64) bool {
	return math.Abs(f) < epsilon
}

func Equals(a, b float64) bool {
	return IsZero(a - b)
}

func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}

	if val > max {
		return max
	}

	return val
}

// ToFixed rounds half away from zero to the given number of decimal places.
func ToFixed(val float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(val*pow) / pow
}

func FloatToStr(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}

func DegreeToRadian(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

func RadianToDegree(radians float64) float64 {
	return radians * 180.0 / math.Pi
}
