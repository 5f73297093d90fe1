package core

import (
	"math"
	"testing"

	"github.com/eaobservatory/jcmt-itc-heterodyne/model"
	"github.com/eaobservatory/jcmt-itc-heterodyne/registry"
)

func testReceiver(t *testing.T, receiver model.Receiver) *model.ReceiverInfo {
	t.Helper()
	reg, err := registry.Default()
	if err != nil {
		t.Fatalf("registry.Default: %v", err)
	}
	info, err := reg.Receiver(receiver)
	if err != nil {
		t.Fatalf("Receiver(%v): %v", receiver, err)
	}
	return info
}

func TestSystemTemperatureFormula(t *testing.T) {
	info := testReceiver(t, model.HARP)
	atm := Atmosphere{
		TauFreq:      0.18,
		Airmass:      1.1547,
		Opacity:      0.18 * 1.1547,
		Transmission: math.Exp(-0.18 * 1.1547),
	}
	atm.TSkyK = TAtmosphereK * (1.0 - atm.Transmission)

	tRx, tSys := SystemTemperature(info, atm, 345.796, false, model.BeamSwitch)
	if tRx <= 0 {
		t.Fatalf("tRx = %v, want positive", tRx)
	}

	// HARP separates sidebands, so no image penalty applies.
	want := (tRx + info.EtaTel*atm.TSkyK + (1.0-info.EtaTel)*TAmbientK) /
		(info.EtaTel * atm.Transmission)
	if math.Abs(tSys-want)/want > 1e-12 {
		t.Fatalf("tSys = %v, want %v", tSys, want)
	}
	if tSys <= tRx {
		t.Errorf("tSys %v should exceed tRx %v", tSys, tRx)
	}
}

func TestSystemTemperatureSidebandPenalty(t *testing.T) {
	// RxA3 has a double-sideband mixer: operating it single sideband
	// doubles T_sys relative to accepting both sidebands.
	info := testReceiver(t, model.RxA3)
	atm := Atmosphere{TauFreq: 0.06, Airmass: 1.2, Opacity: 0.072,
		Transmission: math.Exp(-0.072)}
	atm.TSkyK = TAtmosphereK * (1.0 - atm.Transmission)

	_, ssb := SystemTemperature(info, atm, 230.538, false, model.PositionSwitch)
	_, dsb := SystemTemperature(info, atm, 230.538, true, model.PositionSwitch)
	if math.Abs(ssb-2*dsb)/ssb > 1e-12 {
		t.Fatalf("ssb tSys = %v, want double dsb tSys %v", ssb, dsb)
	}
}

func TestSystemTemperatureFrequencySwitchPenalty(t *testing.T) {
	info := testReceiver(t, model.RxA3)
	atm := Atmosphere{TauFreq: 0.06, Airmass: 1.0, Opacity: 0.06,
		Transmission: math.Exp(-0.06)}
	atm.TSkyK = TAtmosphereK * (1.0 - atm.Transmission)

	_, pssw := SystemTemperature(info, atm, 230.538, true, model.PositionSwitch)
	_, frsw := SystemTemperature(info, atm, 230.538, true, model.FrequencySwitch)
	if math.Abs(frsw-math.Sqrt2*pssw)/frsw > 1e-12 {
		t.Fatalf("frsw tSys = %v, want sqrt(2) * %v", frsw, pssw)
	}
}

func TestSystemTemperatureWorsensWithOpacity(t *testing.T) {
	info := testReceiver(t, model.HARP)

	makeAtm := func(opacity float64) Atmosphere {
		atm := Atmosphere{Opacity: opacity, Transmission: math.Exp(-opacity)}
		atm.TSkyK = TAtmosphereK * (1.0 - atm.Transmission)
		return atm
	}

	_, dry := SystemTemperature(info, makeAtm(0.1), 345.796, false, model.PositionSwitch)
	_, wet := SystemTemperature(info, makeAtm(0.5), 345.796, false, model.PositionSwitch)
	if wet <= dry {
		t.Fatalf("tSys at opacity 0.5 (%v) should exceed tSys at 0.1 (%v)", wet, dry)
	}
}
