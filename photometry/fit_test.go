package photometry

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestFit_RecoversKnownParameters(t *testing.T) {
	const (
		a0 = 2.0
		b0 = 1.0
	)

	n := 1000
	sig := make([]float64, n)
	ref := make([]float64, n)
	for i := range sig {
		sig[i] = 10 + 3*math.Sin(0.01*float64(i))
		ref[i] = (sig[i] - b0) / a0
	}

	slope, intercept, err := Fit(ref, sig)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(slope, a0, 1e-9) {
		t.Fatalf("slope: got %v, want %v", slope, a0)
	}

	if !almostEqual(intercept, b0, 1e-9) {
		t.Fatalf("intercept: got %v, want %v", intercept, b0)
	}
}

func TestFit_LargeDCOffset(t *testing.T) {
	// Fluorescence traces ride on a large DC level; the mean-centered
	// form must stay accurate there.
	n := 500
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = 1e6 + math.Sin(0.1*float64(i))
		y[i] = 0.5*x[i] - 3
	}

	slope, intercept, err := Fit(x, y)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(slope, 0.5, 1e-6) {
		t.Fatalf("slope: got %v, want 0.5", slope)
	}

	if !almostEqual(intercept, -3, 1) {
		t.Fatalf("intercept: got %v, want -3", intercept)
	}
}

func TestFit_DegenerateReference(t *testing.T) {
	x := []float64{4, 4, 4, 4}
	y := []float64{1, 2, 3, 4}

	if _, _, err := Fit(x, y); !errors.Is(err, ErrDegenerateFit) {
		t.Fatalf("constant x: got %v, want ErrDegenerateFit", err)
	}

	if _, _, err := Fit([]float64{1}, []float64{1}); !errors.Is(err, ErrDegenerateFit) {
		t.Fatalf("single sample: got %v, want ErrDegenerateFit", err)
	}
}

func TestFit_LengthMismatch(t *testing.T) {
	if _, _, err := Fit([]float64{1, 2}, []float64{1, 2, 3}); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestDetrend_RemovesLine(t *testing.T) {
	n := 200
	v := make([]float64, n)
	tv := make([]float64, n)
	for i := range v {
		tv[i] = float64(i) / 100
		v[i] = 0.7*tv[i] - 2.5
	}

	out, err := Detrend(v, tv)
	if err != nil {
		t.Fatal(err)
	}

	for i, r := range out {
		if !almostEqual(r, 0, 1e-12) {
			t.Fatalf("residual[%d]: got %v, want 0", i, r)
		}
	}
}

func TestDetrend_ZeroMeanResidual(t *testing.T) {
	n := 500
	v := make([]float64, n)
	tv := make([]float64, n)
	for i := range v {
		tv[i] = float64(i) / 382
		v[i] = 0.3*tv[i] + math.Sin(0.2*float64(i))
	}

	out, err := Detrend(v, tv)
	if err != nil {
		t.Fatal(err)
	}

	var mean float64
	for _, r := range out {
		mean += r
	}
	mean /= float64(n)

	if !almostEqual(mean, 0, 1e-12) {
		t.Fatalf("residual mean: got %v, want 0", mean)
	}
}
