package core

import "math"

// Radiometer equation constants.
const (
	// channelNoiseBandwidthFactor is the ratio of the backend's
	// effective per-channel noise bandwidth to the channel spacing.
	channelNoiseBandwidthFactor = 1.222

	// MinIntTime is the shortest per-point integration the backend
	// can usefully take, in seconds.
	MinIntTime = 0.1
)

// referenceNoiseFactor accounts for the noise contributed by the off
// position. Sharing one off across n points lets the reference
// integrate sqrt(n) times longer, shrinking its contribution from the
// classic factor of 2 down towards 1:
//
//	sqrt(1 + 1/sqrt(n))
func referenceNoiseFactor(sharedOffs int) float64 {
	if sharedOffs < 1 {
		sharedOffs = 1
	}
	return math.Sqrt(1.0 + 1.0/math.Sqrt(float64(sharedOffs)))
}

// RadiometerRMS evaluates the radiometer equation for a per-point
// integration time (seconds):
//
//	rms = sqrt(2) * T_sys * ref / sqrt(n_pol * bw * t * fraction)
//
// where ref is the reference-noise factor for sharedOffs, bw the
// effective noise bandwidth in Hz, fraction the on-source duty
// fraction of the switch mode, and n_pol the number of combined
// polarizations. It is the single algebraic core shared by all three
// public entry points; the time solver below is its exact inverse.
func RadiometerRMS(tSys, bandwidthHz, intTime, fraction float64, sharedOffs, nPol int) float64 {
	ref := referenceNoiseFactor(sharedOffs)
	return math.Sqrt2 * tSys * ref /
		math.Sqrt(float64(nPol)*bandwidthHz*intTime*fraction)
}

// RadiometerTime solves the radiometer equation for the per-point
// integration time reaching the target rms. Closed form; no
// iteration.
func RadiometerTime(tSys, bandwidthHz, rms, fraction float64, sharedOffs, nPol int) float64 {
	ref := referenceNoiseFactor(sharedOffs)
	return 2.0 * tSys * tSys * ref * ref /
		(float64(nPol) * bandwidthHz * rms * rms * fraction)
}

// CombineRMS combines independent noise estimates of equal weight,
// e.g. the overlapping array rows of an oversampled raster:
//
//	1 / sqrt(sum(1/rms_i^2))
func CombineRMS(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += 1.0 / (v * v)
	}
	return 1.0 / math.Sqrt(sum)
}

// effectiveBandwidth returns the noise bandwidth in Hz for a requested
// spectral resolution in MHz.
func effectiveBandwidth(freqResMHz float64) float64 {
	return channelNoiseBandwidthFactor * freqResMHz * 1.0e6
}
