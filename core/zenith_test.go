package core

import (
	"errors"
	"math"
	"testing"
)

func TestZenithAngleFromElevation(t *testing.T) {
	if got, err := ZenithAngleFromElevation(90); err != nil || got != 0 {
		t.Errorf("ZenithAngleFromElevation(90) = %v, %v; want 0", got, err)
	}
	if got, err := ZenithAngleFromElevation(30); err != nil || math.Abs(got-60) > 1e-12 {
		t.Errorf("ZenithAngleFromElevation(30) = %v, %v; want 60", got, err)
	}
	for _, bad := range []float64{0, -5, 91} {
		if _, err := ZenithAngleFromElevation(bad); !errors.Is(err, ErrValueRange) {
			t.Errorf("elevation %v: error = %v, want ErrValueRange", bad, err)
		}
	}
}

func TestEstimateZenithAngleAtTransit(t *testing.T) {
	// At transit the zenith angle is the latitude-declination offset.
	got, err := EstimateZenithAngleDeg(SiteLatitudeDeg, 0)
	if err != nil {
		t.Fatalf("EstimateZenithAngleDeg: %v", err)
	}
	if math.Abs(got) > 1e-9 {
		t.Errorf("source at the zenith: z = %v, want 0", got)
	}

	got, err = EstimateZenithAngleDeg(-10, 0)
	if err != nil {
		t.Fatalf("EstimateZenithAngleDeg: %v", err)
	}
	if math.Abs(got-(SiteLatitudeDeg+10)) > 1e-9 {
		t.Errorf("transit z = %v, want %v", got, SiteLatitudeDeg+10)
	}
}

func TestEstimateZenithAngleGrowsFromTransit(t *testing.T) {
	transit, err := EstimateZenithAngleDeg(0, 0)
	if err != nil {
		t.Fatalf("transit: %v", err)
	}
	later, err := EstimateZenithAngleDeg(0, 2)
	if err != nil {
		t.Fatalf("2h from transit: %v", err)
	}
	if later <= transit {
		t.Errorf("z 2h from transit (%v) should exceed transit z (%v)", later, transit)
	}
}

func TestEstimateZenithAngleRejectsBelowHorizon(t *testing.T) {
	// A far-southern source never rises from this site.
	if _, err := EstimateZenithAngleDeg(-80, 0); !errors.Is(err, ErrValueRange) {
		t.Errorf("circumpolar-south source: error = %v, want ErrValueRange", err)
	}
	// An equatorial source has set 8 hours from transit.
	if _, err := EstimateZenithAngleDeg(0, 8); !errors.Is(err, ErrValueRange) {
		t.Errorf("set source: error = %v, want ErrValueRange", err)
	}
	if _, err := EstimateZenithAngleDeg(95, 0); !errors.Is(err, ErrValueRange) {
		t.Errorf("bad declination: error = %v, want ErrValueRange", err)
	}
}
