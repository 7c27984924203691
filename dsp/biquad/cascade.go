package biquad

// Cascade is an ordered series of biquad sections. Higher-order filters
// (Butterworth lowpass cascades from dsp/design) are processed by feeding
// each section's output into the next.
type Cascade struct {
	sections []Section
}

// NewCascade creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section.
func NewCascade(coeffs []Coefficients) *Cascade {
	c := &Cascade{sections: make([]Section, len(coeffs))}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// Len returns the number of sections in the cascade.
func (c *Cascade) Len() int {
	return len(c.sections)
}

// ProcessSample runs one input sample through all sections in order.
func (c *Cascade) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Cascade) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// PrimeSteadyState primes every section for a constant input x, feeding
// each section's steady output into the next. It returns the cascade's
// steady output.
func (c *Cascade) PrimeSteadyState(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].PrimeSteadyState(x)
	}

	return x
}

// Reset clears all section states.
func (c *Cascade) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}
