// Package stats computes descriptive statistics over processed traces,
// such as a dF/F trace or a filtered channel.
package stats

import "math"

// Stats holds single-trace descriptive statistics.
type Stats struct {
	Length   int
	Mean     float64
	RMS      float64
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	Peak     float64 // max(|Max|, |Min|)
	Range    float64 // Max - Min
	Variance float64
	StdDev   float64
	Skewness float64
}

// Calculate computes all statistics in a single pass using Welford's
// online algorithm for numerical stability on the higher-order moments.
// An empty trace yields the zero Stats.
func Calculate(trace []float64) Stats {
	n := len(trace)
	if n == 0 {
		return Stats{}
	}

	var (
		mean float64
		m2   float64
		m3   float64

		sumSq  float64
		minVal = trace[0]
		minPos int
		maxVal = trace[0]
		maxPos int
	)

	for i, x := range trace {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		term1 := delta * deltaN * float64(i)

		// M3 must be updated before M2.
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		sumSq += x * x

		if x < minVal {
			minVal = x
			minPos = i
		}

		if x > maxVal {
			maxVal = x
			maxPos = i
		}
	}

	nf := float64(n)
	variance := m2 / nf

	var skewness float64
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
	}

	return Stats{
		Length:   n,
		Mean:     mean,
		RMS:      math.Sqrt(sumSq / nf),
		Min:      minVal,
		MinPos:   minPos,
		Max:      maxVal,
		MaxPos:   maxPos,
		Peak:     math.Max(math.Abs(maxVal), math.Abs(minVal)),
		Range:    maxVal - minVal,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Skewness: skewness,
	}
}
