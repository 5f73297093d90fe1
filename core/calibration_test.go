package core

import (
	"math"
	"testing"
)

func TestBrightnessTemperature(t *testing.T) {
	// Far into the Rayleigh-Jeans regime the brightness temperature
	// approaches the physical temperature.
	if got := BrightnessTemperature(1.0e9, 270); math.Abs(got-270) > 0.1 {
		t.Errorf("J(1 GHz, 270 K) = %v, want ~270", got)
	}

	// At 345 GHz the quantum correction is noticeable but small.
	got := BrightnessTemperature(345.796e9, 270)
	if got >= 270 || got < 260 {
		t.Errorf("J(345.796 GHz, 270 K) = %v, want slightly below 270", got)
	}

	// Hotter bodies are brighter at fixed frequency.
	cold := BrightnessTemperature(345.796e9, 80)
	warm := BrightnessTemperature(345.796e9, 270)
	if cold >= warm {
		t.Errorf("J(80 K) = %v should be below J(270 K) = %v", cold, warm)
	}
}

func TestTSysCorrectionFactor(t *testing.T) {
	// With a perfect telescope and no atmosphere the correction
	// vanishes.
	got := TSysCorrectionFactor(1.0, 345.796e9, 0, 1.0, 273, 273, 283)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("ideal correction = %v, want ~1", got)
	}

	// Spillover and opacity both push the correction above unity.
	lossy := TSysCorrectionFactor(0.9, 345.796e9, 0.3, 1.2, 273, 265, 283)
	if lossy <= got {
		t.Errorf("lossy correction = %v, should exceed ideal %v", lossy, got)
	}
}
