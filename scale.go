package chart

import "math"

// DecadeTicks returns candidate tick values {0, step, 2·step, ...} where
// step is the power of ten at floor(log10(maxValue)) + logOffset. The last
// tick is always >= maxValue, so it can serve as a rounded axis bound.
//
// Precondition: maxValue > 0.
func DecadeTicks(maxValue float64, logOffset int) []float64 {
	step := math.Pow(10, math.Floor(math.Log10(maxValue))+float64(logOffset))
	count := int(math.Ceil(maxValue/step)) + 1
	ticks := make([]float64, count)
	for i := range ticks {
		ticks[i] = float64(i) * step
	}
	return ticks
}

// Interpolate returns steps values evenly spaced from start to end,
// inclusive of both endpoints.
//
// Precondition: steps >= 2.
func Interpolate(start, end float64, steps int) []float64 {
	out := make([]float64, steps)
	for i := range out {
		out[i] = start + float64(i)*(end-start)/float64(steps-1)
	}
	return out
}

// InterpolateMidpoints returns steps values centered inside the equal
// sub-intervals of [start, end], used to place labels between grid lines
// rather than on them.
//
// Precondition: steps >= 1.
func InterpolateMidpoints(start, end float64, steps int) []float64 {
	out := make([]float64, steps)
	for i := range out {
		out[i] = start + (float64(i)+0.5)*(end-start)/float64(steps)
	}
	return out
}
