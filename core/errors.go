package core

import (
	"errors"
	"fmt"
)

// Error taxonomy for the calculation engine. All errors are detected
// during validation, before any component computes; callers match them
// with errors.Is.
var (
	// ErrConfiguration marks invalid or missing mode-required
	// parameters and illegal mode combinations.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrValueRange marks physically invalid inputs.
	ErrValueRange = errors.New("value out of range")

	// ErrUnsupportedMode marks requests beyond the capabilities of the
	// chosen receiver.
	ErrUnsupportedMode = errors.New("unsupported mode")
)

// freqRangeError builds the conventional out-of-band message, e.g.
// "the observing frequency (123.457 GHz) is not within the available
// range (234.6 - 345.7 GHz)".
func freqRangeError(label string, valueGHz, minGHz, maxGHz float64) error {
	return fmt.Errorf("%w: the %s (%.3f GHz) is not within the available range (%.1f - %.1f GHz)",
		ErrValueRange, label, valueGHz, minGHz, maxGHz)
}
