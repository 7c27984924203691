package photometry

import "errors"

var (
	// ErrInvalidWindow reports a processing window outside the recording
	// bounds or one that selects no samples.
	ErrInvalidWindow = errors.New("photometry: time window outside recording bounds")

	// ErrDegenerateFit reports a reference channel with zero variance,
	// for which the regression slope is undefined.
	ErrDegenerateFit = errors.New("photometry: reference channel has zero variance")

	// ErrDivisionByZero reports a fitted reference that touches zero,
	// making dF/F undefined at one or more samples.
	ErrDivisionByZero = errors.New("photometry: fitted reference crosses zero")

	errChannelMismatch = errors.New("photometry: signal and reference lengths differ")
)
