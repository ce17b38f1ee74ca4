package plot

import (
	"fmt"
	"math"
	"strings"
)

// CalcRange returns the min and max of data.
// An empty slice yields (0, 1). When all values are equal the range is padded
// so downstream pixel mapping never divides by zero.
func CalcRange(data []float64) (min, max float64) {
	if len(data) == 0 {
		return 0, 1
	}
	min, max = data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		pad := min * 0.1
		if pad == 0 {
			pad = 1
		}
		min -= pad
		max += pad
	}
	return min, max
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// MapRange maps value from [fromMin, fromMax] to [toMin, toMax].
// A degenerate source range maps everything to toMin.
func MapRange(value, fromMin, fromMax, toMin, toMax float64) float64 {
	if fromMax == fromMin {
		return toMin
	}
	t := (value - fromMin) / (fromMax - fromMin)
	return Lerp(toMin, toMax, t)
}

// Ticks generates round tick values covering [min, max], aiming for roughly
// targetCount ticks. Steps are snapped to the usual 1/2/5 progression.
func Ticks(min, max float64, targetCount int) []float64 {
	if min >= max || targetCount <= 0 {
		return []float64{min, max}
	}

	rawStep := (max - min) / float64(targetCount-1)
	magnitude := math.Pow(10, math.Floor(math.Log10(rawStep)))
	normalized := rawStep / magnitude

	var nice float64
	switch {
	case normalized <= 1:
		nice = 1
	case normalized <= 2:
		nice = 2
	case normalized <= 5:
		nice = 5
	default:
		nice = 10
	}
	step := nice * magnitude

	start := math.Floor(min/step) * step
	var ticks []float64
	for v := start; v <= max+step*0.001; v += step {
		if v >= min-step*0.001 {
			ticks = append(ticks, v)
		}
	}
	if len(ticks) == 0 {
		return []float64{min, max}
	}
	return ticks
}

// FormatNumber formats an axis tick value for display.
func FormatNumber(v float64) string {
	switch {
	case math.Abs(v) < 1e-10:
		return "0"
	case math.Abs(v) >= 1e6 || math.Abs(v) < 1e-3:
		return fmt.Sprintf("%.2e", v)
	case v == math.Trunc(v):
		return fmt.Sprintf("%.0f", v)
	default:
		s := fmt.Sprintf("%.3f", v)
		s = strings.TrimRight(s, "0")
		return strings.TrimRight(s, ".")
	}
}
