package stats

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestCalculate_Empty(t *testing.T) {
	if got := Calculate(nil); got != (Stats{}) {
		t.Fatalf("empty trace: got %+v", got)
	}
}

func TestCalculate_KnownSequence(t *testing.T) {
	s := Calculate([]float64{1, 2, 3, 4, 5})

	if s.Length != 5 {
		t.Fatalf("Length: got %d", s.Length)
	}

	if !almostEqual(s.Mean, 3, 1e-12) {
		t.Fatalf("Mean: got %v, want 3", s.Mean)
	}

	if !almostEqual(s.Variance, 2, 1e-12) {
		t.Fatalf("Variance: got %v, want 2", s.Variance)
	}

	if !almostEqual(s.RMS, math.Sqrt(11), 1e-12) {
		t.Fatalf("RMS: got %v, want sqrt(11)", s.RMS)
	}

	if s.Min != 1 || s.MinPos != 0 || s.Max != 5 || s.MaxPos != 4 {
		t.Fatalf("extrema: %+v", s)
	}

	if s.Peak != 5 || s.Range != 4 {
		t.Fatalf("peak/range: %+v", s)
	}

	// Symmetric sequence has zero skewness.
	if !almostEqual(s.Skewness, 0, 1e-12) {
		t.Fatalf("Skewness: got %v, want 0", s.Skewness)
	}
}

func TestCalculate_NegativePeak(t *testing.T) {
	s := Calculate([]float64{-10, 1, 2})

	if s.Peak != 10 {
		t.Fatalf("Peak: got %v, want 10", s.Peak)
	}

	if s.Min != -10 || s.MinPos != 0 {
		t.Fatalf("min: %+v", s)
	}
}

func TestCalculate_SkewedSequence(t *testing.T) {
	// Long right tail → positive skewness.
	s := Calculate([]float64{0, 0, 0, 0, 10})

	if s.Skewness <= 0 {
		t.Fatalf("Skewness: got %v, want > 0", s.Skewness)
	}
}

func TestCalculate_ConstantTrace(t *testing.T) {
	s := Calculate([]float64{4, 4, 4})

	if s.Variance != 0 || s.StdDev != 0 || s.Skewness != 0 {
		t.Fatalf("constant trace: %+v", s)
	}

	if !almostEqual(s.Mean, 4, 1e-12) {
		t.Fatalf("Mean: got %v, want 4", s.Mean)
	}
}
