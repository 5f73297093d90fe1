package core

import (
	"fmt"
	"math"
)

// SiteLatitudeDeg is the latitude of the telescope.
const SiteLatitudeDeg = 19.823

// ZenithAngleFromElevation converts an elevation angle to a zenith
// angle. Elevations at or below the horizon are rejected because the
// airmass is undefined there.
func ZenithAngleFromElevation(elevationDeg float64) (float64, error) {
	if elevationDeg <= 0 || elevationDeg > 90 {
		return 0, fmt.Errorf("%w: elevation %.1f deg outside (0, 90]",
			ErrValueRange, elevationDeg)
	}
	return 90.0 - elevationDeg, nil
}

// EstimateZenithAngleDeg estimates the zenith angle of a source at the
// given declination when it is hourAngleHours from transit, using the
// site latitude:
//
//	cos z = sin(lat) sin(dec) + cos(lat) cos(dec) cos(H)
//
// At transit (H = 0) this reduces to |lat - dec|. Sources below the
// horizon at the requested hour angle are rejected.
func EstimateZenithAngleDeg(declinationDeg, hourAngleHours float64) (float64, error) {
	if declinationDeg < -90 || declinationDeg > 90 {
		return 0, fmt.Errorf("%w: declination %.1f deg outside [-90, 90]",
			ErrValueRange, declinationDeg)
	}

	lat := SiteLatitudeDeg * math.Pi / 180.0
	dec := declinationDeg * math.Pi / 180.0
	hourAngle := hourAngleHours * 15.0 * math.Pi / 180.0

	cosZ := math.Sin(lat)*math.Sin(dec) + math.Cos(lat)*math.Cos(dec)*math.Cos(hourAngle)
	if cosZ > 1 {
		cosZ = 1
	}
	if cosZ <= 0 {
		return 0, fmt.Errorf("%w: source at declination %.1f deg is below the horizon %.1f hours from transit",
			ErrValueRange, declinationDeg, hourAngleHours)
	}

	return math.Acos(cosZ) * 180.0 / math.Pi, nil
}
