package core

import (
	"fmt"
	"math"

	"github.com/eaobservatory/jcmt-itc-heterodyne/model"
)

// validModes is the closed set of legal (map mode, switch mode)
// combinations. Raster maps can only position switch: chopping or
// frequency switching while scanning is not supported by the
// telescope.
var validModes = map[[2]int]bool{
	{int(model.MapGrid), int(model.BeamSwitch)}:        true,
	{int(model.MapGrid), int(model.PositionSwitch)}:    true,
	{int(model.MapGrid), int(model.FrequencySwitch)}:   true,
	{int(model.MapJiggle), int(model.BeamSwitch)}:      true,
	{int(model.MapJiggle), int(model.PositionSwitch)}:  true,
	{int(model.MapJiggle), int(model.FrequencySwitch)}: true,
	{int(model.MapRaster), int(model.PositionSwitch)}:  true,
}

// onSourceFraction is the fraction of each integration second spent
// collecting signal, per switch mode. Beam switching chops half the
// time away; position switching loses a little more to reference
// moves; frequency switching stays on source (its penalty is the
// sqrt(2) applied to T_sys).
func onSourceFraction(swMode model.SwitchMode) float64 {
	switch swMode {
	case model.BeamSwitch:
		return 0.5
	case model.PositionSwitch:
		return 0.45
	case model.FrequencySwitch:
		return 1.0
	default:
		return 0
	}
}

// overhead captures how a given observing mode partitions time across
// the map and how references are shared.
type overhead struct {
	// fraction is the on-source duty fraction of the switch mode.
	fraction float64
	// points is the number of distinct map positions.
	points int
	// passes is the number of coverage passes (2 for basket-weave
	// rasters and separate-off grid/jiggle maps).
	passes int
	// sharedOffs is the number of points sharing one off position;
	// the radiometer stage turns it into the sqrt(1 + 1/sqrt(n))
	// reference-noise factor.
	sharedOffs int
	// rowOverlap is the number of array rows covering each sky point
	// in an oversampled raster; 1 everywhere else.
	rowOverlap int
}

// modeOverhead validates the mode selection against the receiver and
// derives the overhead parameters. All configuration failures surface
// here, before any numeric work.
func modeOverhead(info *model.ReceiverInfo, req *model.Request) (overhead, error) {
	if !validModes[[2]int{int(req.MapMode), int(req.SwitchMode)}] {
		return overhead{}, fmt.Errorf("%w: %s maps cannot use %s switching",
			ErrConfiguration, req.MapMode, req.SwitchMode)
	}
	if req.SwitchMode == model.FrequencySwitch && !info.FreqSwAvailable {
		return overhead{}, fmt.Errorf("%w: %s does not support frequency switching",
			ErrUnsupportedMode, info.Name)
	}
	if req.BasketWeave && req.MapMode != model.MapRaster {
		return overhead{}, fmt.Errorf("%w: basket weaving only applies to raster maps",
			ErrConfiguration)
	}
	if req.SeparateOffs && req.MapMode == model.MapRaster {
		return overhead{}, fmt.Errorf("%w: separate offs only apply to grid and jiggle maps",
			ErrConfiguration)
	}

	ov := overhead{
		fraction:   onSourceFraction(req.SwitchMode),
		passes:     1,
		sharedOffs: 1,
		rowOverlap: 1,
	}

	switch req.MapMode {
	case model.MapGrid:
		if req.NPoints < 1 {
			return overhead{}, fmt.Errorf("%w: grid maps require n_points >= 1",
				ErrConfiguration)
		}
		ov.points = req.NPoints
		// Chopped grids revisit a common reference; position-switched
		// grids take an off per point.
		if req.SwitchMode == model.BeamSwitch && !req.SeparateOffs {
			ov.sharedOffs = req.NPoints
		}
		if req.SeparateOffs {
			ov.passes = 2
		}

	case model.MapJiggle:
		if req.NPoints < 1 {
			return overhead{}, fmt.Errorf("%w: jiggle maps require n_points >= 1",
				ErrConfiguration)
		}
		if info.Array != nil && len(info.Array.JigglePatterns) > 0 {
			if !jigglePatternExists(info.Array.JigglePatterns, req.NPoints) {
				return overhead{}, fmt.Errorf("%w: %s has no %d-point jiggle pattern",
					ErrConfiguration, info.Name, req.NPoints)
			}
		}
		ov.points = req.NPoints
		if !req.SeparateOffs {
			ov.sharedOffs = req.NPoints
		} else {
			ov.passes = 2
		}

	case model.MapRaster:
		if req.DimX <= 0 {
			return overhead{}, fmt.Errorf("%w: raster maps require dim_x", ErrConfiguration)
		}
		if req.DimY <= 0 {
			return overhead{}, fmt.Errorf("%w: raster maps require dim_y", ErrConfiguration)
		}
		if req.Dx <= 0 {
			return overhead{}, fmt.Errorf("%w: raster maps require dx", ErrConfiguration)
		}
		if req.Dy <= 0 {
			return overhead{}, fmt.Errorf("%w: raster maps require dy", ErrConfiguration)
		}

		rowPoints := int(math.Ceil(req.DimX / req.Dx))
		rows := int(math.Ceil(req.DimY / req.Dy))
		ov.points = rowPoints * rows
		// One off per scan row, shared along the row.
		ov.sharedOffs = rowPoints
		if req.BasketWeave {
			ov.passes = 2
		}
		if info.Array != nil && req.Dy < info.Array.FootprintArcsec {
			overlap := int(math.Floor(info.Array.FootprintArcsec / req.Dy))
			if overlap > info.NPixels {
				overlap = info.NPixels
			}
			if overlap > 1 {
				ov.rowOverlap = overlap
			}
		}

	default:
		return overhead{}, fmt.Errorf("%w: unknown map mode", ErrConfiguration)
	}

	return ov, nil
}

func jigglePatternExists(patterns map[string]int, nPoints int) bool {
	for _, n := range patterns {
		if n == nPoints {
			return true
		}
	}
	return false
}
