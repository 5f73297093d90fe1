package core

import "fmt"

// SpeedOfLightKmPerS is the speed of light in km/s.
const SpeedOfLightKmPerS = 299792.458

// VelocityToFreqRes converts a velocity resolution (km/s) at a given
// rest frequency (GHz) into a frequency resolution in MHz.
func VelocityToFreqRes(velocityKmPerS, restFreqGHz float64) (float64, error) {
	if velocityKmPerS <= 0 {
		return 0, fmt.Errorf("%w: velocity resolution must be positive, got %g",
			ErrValueRange, velocityKmPerS)
	}
	if restFreqGHz <= 0 {
		return 0, fmt.Errorf("%w: rest frequency must be positive, got %g",
			ErrValueRange, restFreqGHz)
	}
	// GHz * (km/s / km/s) = GHz; scale to MHz.
	return velocityKmPerS * restFreqGHz / SpeedOfLightKmPerS * 1000.0, nil
}

// FreqResToVelocity is the inverse conversion, returning a velocity
// resolution in km/s.
func FreqResToVelocity(freqResMHz, restFreqGHz float64) (float64, error) {
	if freqResMHz <= 0 {
		return 0, fmt.Errorf("%w: frequency resolution must be positive, got %g",
			ErrValueRange, freqResMHz)
	}
	if restFreqGHz <= 0 {
		return 0, fmt.Errorf("%w: rest frequency must be positive, got %g",
			ErrValueRange, restFreqGHz)
	}
	return freqResMHz / 1000.0 * SpeedOfLightKmPerS / restFreqGHz, nil
}
