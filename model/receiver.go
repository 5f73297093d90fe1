package model

import "fmt"

// Receiver identifies one of the supported heterodyne front ends.
// The set is closed and versioned: adding an instrument means adding a
// data row to the registry, not changing any calculation code.
type Receiver int

const (
	ReceiverUnknown Receiver = iota
	RxA3
	HARP
	RxWD
)

// receiverNames fixes both the canonical spelling and the display order.
var receiverNames = []struct {
	receiver Receiver
	name     string
}{
	{RxA3, "RxA3"},
	{HARP, "HARP"},
	{RxWD, "RxWD"},
}

func (r Receiver) String() string {
	for _, entry := range receiverNames {
		if entry.receiver == r {
			return entry.name
		}
	}
	return fmt.Sprintf("Receiver(%d)", int(r))
}

// AllReceivers returns the supported receivers in display order.
func AllReceivers() []Receiver {
	out := make([]Receiver, 0, len(receiverNames))
	for _, entry := range receiverNames {
		out = append(out, entry.receiver)
	}
	return out
}

// ParseReceiver maps a receiver name to its enumeration value.
func ParseReceiver(name string) (Receiver, error) {
	for _, entry := range receiverNames {
		if entry.name == name {
			return entry.receiver, nil
		}
	}
	return ReceiverUnknown, fmt.Errorf("unknown receiver %q", name)
}

// MarshalText encodes the receiver as its canonical name.
func (r Receiver) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a receiver from its canonical name.
func (r *Receiver) UnmarshalText(text []byte) error {
	parsed, err := ParseReceiver(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// FrequencyBand is a [min,max] sky-frequency range in GHz.
type FrequencyBand struct {
	MinGHz float64 `json:"MinGHz"`
	MaxGHz float64 `json:"MaxGHz"`
}

// Contains reports whether freqGHz lies inside the band (inclusive).
func (b FrequencyBand) Contains(freqGHz float64) bool {
	return freqGHz >= b.MinGHz && freqGHz <= b.MaxGHz
}

// TRxPoint is one sample of the fitted receiver-temperature model.
// The registry supplies these sorted by frequency.
type TRxPoint struct {
	FreqGHz float64 `json:"FreqGHz"`
	TRxK    float64 `json:"TRxK"`
}

// ArrayInfo describes the focal-plane geometry of an array receiver.
type ArrayInfo struct {
	// SizeArcsec is the full extent of the receptor grid on the sky.
	SizeArcsec float64 `json:"SizeArcsec"`
	// FAngleDeg is the rotation of the grid relative to the scan axis.
	FAngleDeg float64 `json:"FAngleDeg"`
	// FootprintArcsec is the projected extent along the scan-normal
	// direction, SizeArcsec * cos(FAngleDeg). Derived by the registry.
	FootprintArcsec float64 `json:"FootprintArcsec,omitempty"`

	// ScanSpacings names the recommended raster row spacings (arcsec).
	ScanSpacings map[string]float64 `json:"ScanSpacings,omitempty"`
	// JigglePatterns maps pattern names to their point counts. When
	// present, jiggle observations must use one of these counts.
	JigglePatterns map[string]int `json:"JigglePatterns,omitempty"`
}

// ReceiverInfo is the static parameter record for one receiver.
// Constructed once by the registry and shared read-only by all
// calculations.
type ReceiverInfo struct {
	Name string        `json:"Name"`
	Band FrequencyBand `json:"Band"`

	// NMix is the number of mixers; dual-polarization observing
	// requires exactly two.
	NMix int `json:"NMix"`

	SSBAvailable bool `json:"SSBAvailable"`
	DSBAvailable bool `json:"DSBAvailable"`
	// FreqSwAvailable marks receivers that can frequency switch.
	FreqSwAvailable bool `json:"FreqSwAvailable"`

	// NPixels is the number of spatial pixels (1 for single-beam
	// instruments).
	NPixels int `json:"NPixels"`

	// BeamFWHMArcsec is the half-power beam width at band centre.
	BeamFWHMArcsec float64 `json:"BeamFWHMArcsec"`

	// EtaTel is the telescope efficiency entering the system
	// temperature calculation.
	EtaTel float64 `json:"EtaTel"`

	// IFBandwidthHz is the usable IF bandwidth, used in place of the
	// spectral-line bandwidth in continuum mode.
	IFBandwidthHz float64 `json:"IFBandwidthHz"`

	// TRx is the receiver-temperature model, piecewise linear in
	// frequency and sorted by frequency.
	TRx []TRxPoint `json:"TRx"`

	// Array is nil for single-beam receivers.
	Array *ArrayInfo `json:"Array,omitempty"`
}

// InterpolatedTRx returns the receiver temperature at freqGHz by linear
// interpolation of the model table. Outside the tabulated range the
// first or last value is returned, matching the behaviour of the
// calibration pipeline that produced the table.
func (info *ReceiverInfo) InterpolatedTRx(freqGHz float64) float64 {
	var prev *TRxPoint
	for i := range info.TRx {
		point := &info.TRx[i]
		if freqGHz <= point.FreqGHz {
			if prev == nil {
				return point.TRxK
			}
			return prev.TRxK +
				(point.TRxK-prev.TRxK)*(freqGHz-prev.FreqGHz)/
					(point.FreqGHz-prev.FreqGHz)
		}
		prev = point
	}
	if prev == nil {
		return 0
	}
	return prev.TRxK
}
