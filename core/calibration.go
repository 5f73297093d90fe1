package core

import "math"

// Physical constants (SI).
const (
	planckConstant    = 6.62607015e-34
	boltzmannConstant = 1.380649e-23
)

// BrightnessTemperature returns the Rayleigh-Jeans brightness
// temperature of a black body at the given physical temperature,
// observed at frequencyHz.
func BrightnessTemperature(frequencyHz, physicalK float64) float64 {
	temp := planckConstant * frequencyHz / boltzmannConstant
	return temp / (math.Exp(temp/physicalK) - 1.0)
}

// TSysCorrectionFactor replicates the chopper-wheel correction factor
// the backend applies to its system temperature measurements, so that
// calibration tooling can compare predicted and logged T_sys on the
// same footing.
func TSysCorrectionFactor(etaTel, frequencyHz, tauFreq, airmass, tLoadK, tSpillK, tAirK float64) float64 {
	tAtmK := tAirK - 10.0

	jLoad := BrightnessTemperature(frequencyHz, tLoadK)
	jSpill := BrightnessTemperature(frequencyHz, tSpillK)
	jAtm := BrightnessTemperature(frequencyHz, tAtmK)

	c := 1.0
	c += ((1.0 - etaTel) / etaTel) * ((jLoad - jSpill) / jLoad) * math.Exp(tauFreq*airmass)
	c += ((jLoad - jAtm) / jLoad) * (math.Exp(tauFreq*airmass) - 1.0)

	return c
}
