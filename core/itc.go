// Package core implements the heterodyne integration-time calculator:
// the atmospheric model, system temperature, mode overheads and the
// radiometer-equation solver, behind a small facade. Every calculation
// is a pure function of its inputs; the only shared object is the
// read-only registry, so the facade is safe for concurrent use.
package core

import (
	"fmt"
	"math"

	"github.com/eaobservatory/jcmt-itc-heterodyne/model"
	"github.com/eaobservatory/jcmt-itc-heterodyne/registry"
)

// ITC is the calculation facade. It composes the registry with the
// engine stages and exposes the three bidirectional entry points.
type ITC struct {
	reg *registry.Registry
}

// New constructs a calculator over the given registry.
func New(reg *registry.Registry) *ITC {
	return &ITC{reg: reg}
}

// Registry returns the receiver table backing this calculator.
func (itc *ITC) Registry() *registry.Registry {
	return itc.reg
}

// solveFor selects which quantity an entry point treats as unknown.
type solveFor int

const (
	solveTime solveFor = iota
	solveRMSForElapsed
	solveRMSForInt
)

// CalculateTime solves for the total elapsed time (seconds) needed to
// reach req.RMS.
func (itc *ITC) CalculateTime(req model.Request) (model.Result, error) {
	return itc.calculate(solveTime, req)
}

// CalculateRMSForElapsedTime solves for the rms (K) reached after
// req.ElapsedTime seconds of total observation, sharing the time
// across the map as the mode dictates.
func (itc *ITC) CalculateRMSForElapsedTime(req model.Request) (model.Result, error) {
	return itc.calculate(solveRMSForElapsed, req)
}

// CalculateRMSForIntTime solves for the rms (K) reached with
// req.IntTime seconds of integration per map point, independent of the
// total map size.
func (itc *ITC) CalculateRMSForIntTime(req model.Request) (model.Result, error) {
	return itc.calculate(solveRMSForInt, req)
}

// calculate is the shared engine path: validate everything, then run
// atmosphere -> system temperature -> overheads -> radiometer, with
// the entry point deciding only which variable is unknown.
func (itc *ITC) calculate(mode solveFor, req model.Request) (model.Result, error) {
	info, err := itc.reg.Receiver(req.Receiver)
	if err != nil {
		return model.Result{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	if err := checkSolveFor(mode, &req); err != nil {
		return model.Result{}, err
	}
	if err := validateRequest(info, &req); err != nil {
		return model.Result{}, err
	}

	atm, err := EvaluateAtmosphere(itc.reg.Opacity(), req.Tau225, req.FreqGHz, req.ZenithAngleDeg)
	if err != nil {
		return model.Result{}, err
	}

	tRx, tSys := SystemTemperature(info, atm, req.FreqGHz, req.IsDSB, req.SwitchMode)

	ov, err := modeOverhead(info, &req)
	if err != nil {
		return model.Result{}, err
	}

	bandwidthHz := effectiveBandwidth(req.FreqResMHz)
	if req.ContinuumMode {
		bandwidthHz = info.IFBandwidthHz
	}

	nPol := 1
	if req.DualPolarization {
		nPol = 2
	}

	var (
		value   float64
		intTime float64
		elapsed float64
	)
	perPoint := float64(ov.passes * ov.points)

	switch mode {
	case solveTime:
		// Oversampled rasters combine rowOverlap coverages per sky
		// point, so each coverage may be noisier by sqrt(overlap).
		target := req.RMS * math.Sqrt(float64(ov.rowOverlap))
		intTime = RadiometerTime(tSys, bandwidthHz, target, ov.fraction, ov.sharedOffs, nPol)
		if intTime < MinIntTime {
			return model.Result{}, fmt.Errorf("%w: the requested target sensitivity led to an integration time per point (%.3f s) less than the minimum (%.1f s)",
				ErrValueRange, intTime, MinIntTime)
		}
		elapsed = perPoint * intTime
		value = elapsed

	case solveRMSForElapsed:
		intTime = req.ElapsedTime / perPoint
		if intTime < MinIntTime {
			return model.Result{}, fmt.Errorf("%w: the requested elapsed time led to an integration time per point (%.3f s) less than the minimum (%.1f s)",
				ErrValueRange, intTime, MinIntTime)
		}
		elapsed = req.ElapsedTime
		value = combinedRMS(tSys, bandwidthHz, intTime, ov, nPol)

	case solveRMSForInt:
		if req.IntTime < MinIntTime {
			return model.Result{}, fmt.Errorf("%w: the requested integration time per point is less than the minimum (%.1f s)",
				ErrValueRange, MinIntTime)
		}
		intTime = req.IntTime
		elapsed = perPoint * intTime
		value = combinedRMS(tSys, bandwidthHz, intTime, ov, nPol)
	}

	result := model.Result{Value: value}
	if req.WithExtra {
		result.Extra = &model.Extra{
			TRx:          tRx,
			TSys:         tSys,
			TauFreq:      atm.TauFreq,
			Opacity:      atm.Opacity,
			Airmass:      atm.Airmass,
			Transmission: atm.Transmission,
			BandwidthHz:  bandwidthHz,
			Points:       ov.points,
			Passes:       ov.passes,
			RowOverlap:   ov.rowOverlap,
			IntTime:      intTime,
			ElapsedTime:  elapsed,
			ImageFreqGHz: imageFrequency(&req),
		}
	}
	return result, nil
}

// combinedRMS evaluates the radiometer equation for one coverage and
// combines the overlapping coverages of an oversampled raster.
func combinedRMS(tSys, bandwidthHz, intTime float64, ov overhead, nPol int) float64 {
	single := RadiometerRMS(tSys, bandwidthHz, intTime, ov.fraction, ov.sharedOffs, nPol)
	if ov.rowOverlap <= 1 {
		return single
	}
	coverages := make([]float64, ov.rowOverlap)
	for i := range coverages {
		coverages[i] = single
	}
	return CombineRMS(coverages)
}

// checkSolveFor enforces that exactly the entry point's unknown is
// absent and the required known quantity is supplied and positive.
func checkSolveFor(mode solveFor, req *model.Request) error {
	supplied := 0
	if req.RMS != 0 {
		supplied++
	}
	if req.ElapsedTime != 0 {
		supplied++
	}
	if req.IntTime != 0 {
		supplied++
	}
	if supplied == 0 {
		return fmt.Errorf("%w: no solve-for quantity supplied", ErrConfiguration)
	}
	if supplied > 1 {
		return fmt.Errorf("%w: more than one of rms, elapsed_time and int_time supplied",
			ErrConfiguration)
	}

	switch mode {
	case solveTime:
		if req.RMS == 0 {
			return fmt.Errorf("%w: calculating time requires a target rms", ErrConfiguration)
		}
		if req.RMS < 0 {
			return fmt.Errorf("%w: target rms must be positive, got %g", ErrValueRange, req.RMS)
		}
	case solveRMSForElapsed:
		if req.ElapsedTime == 0 {
			return fmt.Errorf("%w: calculating rms requires an elapsed time", ErrConfiguration)
		}
		if req.ElapsedTime < 0 {
			return fmt.Errorf("%w: elapsed time must be positive, got %g", ErrValueRange, req.ElapsedTime)
		}
	case solveRMSForInt:
		if req.IntTime == 0 {
			return fmt.Errorf("%w: calculating rms requires an integration time", ErrConfiguration)
		}
		if req.IntTime < 0 {
			return fmt.Errorf("%w: integration time must be positive, got %g", ErrValueRange, req.IntTime)
		}
	}
	return nil
}

// validateRequest performs all remaining precondition checks so that
// no engine stage starts computing on invalid input.
func validateRequest(info *model.ReceiverInfo, req *model.Request) error {
	if !info.Band.Contains(req.FreqGHz) {
		return freqRangeError("observing frequency", req.FreqGHz,
			info.Band.MinGHz, info.Band.MaxGHz)
	}
	if !req.ContinuumMode && req.FreqResMHz <= 0 {
		return fmt.Errorf("%w: frequency resolution must be positive, got %g",
			ErrValueRange, req.FreqResMHz)
	}
	if req.DualPolarization && info.NMix != 2 {
		return fmt.Errorf("%w: %s does not support dual polarization",
			ErrUnsupportedMode, info.Name)
	}
	if req.IsDSB && !info.DSBAvailable {
		return fmt.Errorf("%w: %s cannot observe double sideband",
			ErrUnsupportedMode, info.Name)
	}
	if !req.Sideband.Valid() {
		return fmt.Errorf("%w: unknown sideband %q", ErrConfiguration, req.Sideband)
	}
	if req.Sideband != model.SidebandNone && !req.IsDSB && !info.SSBAvailable {
		return fmt.Errorf("%w: %s cannot separate sidebands",
			ErrUnsupportedMode, info.Name)
	}
	if req.IFFreqGHz < 0 {
		return fmt.Errorf("%w: IF frequency must not be negative, got %g",
			ErrValueRange, req.IFFreqGHz)
	}
	return nil
}

// imageFrequency reports the image-sideband sky frequency when the
// request places the line within the IF band; 0 when it does not.
func imageFrequency(req *model.Request) float64 {
	if req.IFFreqGHz <= 0 {
		return 0
	}
	switch req.Sideband {
	case model.SidebandUpper:
		return req.FreqGHz - 2.0*req.IFFreqGHz
	case model.SidebandLower:
		return req.FreqGHz + 2.0*req.IFFreqGHz
	default:
		return 0
	}
}
