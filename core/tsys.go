package core

import (
	"math"

	"github.com/eaobservatory/jcmt-itc-heterodyne/model"
)

// SystemTemperature combines the receiver temperature, atmospheric
// emission and telescope spillover into the single-sideband system
// temperature:
//
//	T_sys = (T_rx + eta_tel*T_sky + (1-eta_tel)*T_amb) * k_sb
//	        / (eta_tel * transmission)
//
// k_sb is the image-sideband penalty: a double-sideband mixer operated
// single-sideband collects noise from both sidebands but signal from
// one, doubling the effective system temperature. Frequency switching
// carries its own sqrt(2) sensitivity penalty, applied here so that
// the radiometer stage stays a pure noise-vs-time relation.
//
// The dual-polarization gain is deliberately NOT applied here: T_sys
// remains a per-mixer sensitivity figure, and polarization combination
// belongs to the radiometer stage.
func SystemTemperature(info *model.ReceiverInfo, atm Atmosphere, freqGHz float64, isDSB bool, swMode model.SwitchMode) (tRx, tSys float64) {
	tRx = info.InterpolatedTRx(freqGHz)

	sidebandFactor := 1.0
	if !info.SSBAvailable && !isDSB {
		sidebandFactor = 2.0
	}

	tSys = (tRx + info.EtaTel*atm.TSkyK + (1.0-info.EtaTel)*TAmbientK) *
		sidebandFactor / (info.EtaTel * atm.Transmission)

	if swMode == model.FrequencySwitch {
		tSys *= math.Sqrt2
	}

	return tRx, tSys
}
