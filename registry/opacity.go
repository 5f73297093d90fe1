package registry

import "fmt"

// OpacityPoint is one (frequency, zenith opacity) sample.
type OpacityPoint struct {
	FreqGHz float64
	Tau     float64
}

// OpacityTable holds the opacity-vs-frequency samples computed for one
// reference 225 GHz opacity.
type OpacityTable struct {
	Tau225 float64
	Points []OpacityPoint
}

// OpacityGrid is a set of opacity tables spanning the usable range of
// 225 GHz zenith opacities. Tables are sorted by Tau225.
type OpacityGrid struct {
	Tables []OpacityTable
}

// InterpolatedOpacity returns the zenith opacity at freqGHz for the
// given 225 GHz opacity. It first interpolates each of the two
// bracketing tables over frequency (clamping at the table ends), then
// interpolates between the tables, extrapolating beyond the tabulated
// tau_225 range at either end.
func (g *OpacityGrid) InterpolatedOpacity(tau225, freqGHz float64) float64 {
	tables := g.Tables

	// Pick the pair of tables spanning tau225; at the ends use the
	// first or last two for extrapolation.
	lo, hi := len(tables)-2, len(tables)-1
	for i := range tables {
		if tables[i].Tau225 >= tau225 {
			if i == 0 {
				lo, hi = 0, 1
			} else {
				lo, hi = i-1, i
			}
			break
		}
	}

	tauLo := tables[lo].interpolate(freqGHz)
	tauHi := tables[hi].interpolate(freqGHz)

	return tauLo + (tau225-tables[lo].Tau225)*(tauHi-tauLo)/
		(tables[hi].Tau225-tables[lo].Tau225)
}

func (t *OpacityTable) interpolate(freqGHz float64) float64 {
	var prev *OpacityPoint
	for i := range t.Points {
		point := &t.Points[i]
		if point.FreqGHz >= freqGHz {
			if prev == nil {
				return point.Tau
			}
			return prev.Tau + (point.Tau-prev.Tau)*(freqGHz-prev.FreqGHz)/
				(point.FreqGHz-prev.FreqGHz)
		}
		prev = point
	}
	return prev.Tau
}

func (g *OpacityGrid) validate() error {
	if g == nil || len(g.Tables) < 2 {
		return fmt.Errorf("opacity grid requires at least two tau_225 tables")
	}
	for i, table := range g.Tables {
		if len(table.Points) == 0 {
			return fmt.Errorf("opacity table for tau_225=%g is empty", table.Tau225)
		}
		if i > 0 && table.Tau225 <= g.Tables[i-1].Tau225 {
			return fmt.Errorf("opacity tables not sorted by tau_225")
		}
		for j := 1; j < len(table.Points); j++ {
			if table.Points[j].FreqGHz <= table.Points[j-1].FreqGHz {
				return fmt.Errorf("opacity table for tau_225=%g not sorted by frequency",
					table.Tau225)
			}
		}
	}
	return nil
}
