package core

import (
	"fmt"
	"math"

	"github.com/eaobservatory/jcmt-itc-heterodyne/registry"
)

// Site constants. The ambient temperature is the fixed physical
// temperature assumed for the telescope surroundings; the atmosphere
// radiates at 10 K below ambient, following the backend's system
// temperature convention.
const (
	TAmbientK    = 270.0
	TAtmosphereK = TAmbientK - 10.0
)

// Atmosphere describes the line of sight through the atmosphere at the
// observing frequency.
type Atmosphere struct {
	// TauFreq is the zenith opacity at the observing frequency.
	TauFreq float64
	// Airmass is the relative path length, 1/cos(zenith angle).
	Airmass float64
	// Opacity is the line-of-sight opacity, TauFreq * Airmass.
	Opacity float64
	// Transmission is exp(-Opacity).
	Transmission float64
	// TSkyK is the atmospheric brightness temperature seen by the
	// receiver, T_atm * (1 - Transmission).
	TSkyK float64
}

// Airmass converts a zenith angle in degrees into a relative path
// length through the atmosphere.
func Airmass(zenithAngleDeg float64) (float64, error) {
	if zenithAngleDeg < 0 || zenithAngleDeg >= 90 {
		return 0, fmt.Errorf("%w: zenith angle %.1f deg outside [0, 90)",
			ErrValueRange, zenithAngleDeg)
	}
	return 1.0 / math.Cos(zenithAngleDeg*math.Pi/180.0), nil
}

// EvaluateAtmosphere scales the 225 GHz zenith opacity to the observing
// frequency using the registry's opacity grid and combines it with the
// zenith angle.
func EvaluateAtmosphere(grid *registry.OpacityGrid, tau225, freqGHz, zenithAngleDeg float64) (Atmosphere, error) {
	if tau225 <= 0 {
		return Atmosphere{}, fmt.Errorf("%w: tau_225 must be positive, got %g",
			ErrValueRange, tau225)
	}

	airmass, err := Airmass(zenithAngleDeg)
	if err != nil {
		return Atmosphere{}, err
	}

	tauFreq := grid.InterpolatedOpacity(tau225, freqGHz)
	opacity := tauFreq * airmass
	transmission := math.Exp(-opacity)

	return Atmosphere{
		TauFreq:      tauFreq,
		Airmass:      airmass,
		Opacity:      opacity,
		Transmission: transmission,
		TSkyK:        TAtmosphereK * (1.0 - transmission),
	}, nil
}
