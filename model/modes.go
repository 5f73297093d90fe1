package model

import "fmt"

// MapMode is the spatial mapping strategy.
type MapMode int

const (
	MapModeUnknown MapMode = iota
	MapGrid
	MapJiggle
	MapRaster
)

func (m MapMode) String() string {
	switch m {
	case MapGrid:
		return "grid"
	case MapJiggle:
		return "jiggle"
	case MapRaster:
		return "raster"
	default:
		return fmt.Sprintf("MapMode(%d)", int(m))
	}
}

// ParseMapMode maps a mode name to its enumeration value.
func ParseMapMode(name string) (MapMode, error) {
	switch name {
	case "grid":
		return MapGrid, nil
	case "jiggle":
		return MapJiggle, nil
	case "raster":
		return MapRaster, nil
	default:
		return MapModeUnknown, fmt.Errorf("unknown map mode %q", name)
	}
}

// MarshalText encodes the map mode as its lowercase name.
func (m MapMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a map mode from its lowercase name.
func (m *MapMode) UnmarshalText(text []byte) error {
	parsed, err := ParseMapMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// SwitchMode is the background-subtraction strategy.
type SwitchMode int

const (
	SwitchModeUnknown SwitchMode = iota
	BeamSwitch
	PositionSwitch
	FrequencySwitch
)

func (s SwitchMode) String() string {
	switch s {
	case BeamSwitch:
		return "bmsw"
	case PositionSwitch:
		return "pssw"
	case FrequencySwitch:
		return "frsw"
	default:
		return fmt.Sprintf("SwitchMode(%d)", int(s))
	}
}

// ParseSwitchMode maps a switch-mode name to its enumeration value.
func ParseSwitchMode(name string) (SwitchMode, error) {
	switch name {
	case "bmsw":
		return BeamSwitch, nil
	case "pssw":
		return PositionSwitch, nil
	case "frsw":
		return FrequencySwitch, nil
	default:
		return SwitchModeUnknown, fmt.Errorf("unknown switch mode %q", name)
	}
}

// MarshalText encodes the switch mode as its lowercase name.
func (s SwitchMode) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a switch mode from its lowercase name.
func (s *SwitchMode) UnmarshalText(text []byte) error {
	parsed, err := ParseSwitchMode(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Sideband selects which sideband carries the line in sideband-separating
// operation. Empty means "not specified".
type Sideband string

const (
	SidebandNone  Sideband = ""
	SidebandLower Sideband = "lsb"
	SidebandUpper Sideband = "usb"
)

// Valid reports whether the sideband value is one of the recognised
// settings.
func (s Sideband) Valid() bool {
	switch s {
	case SidebandNone, SidebandLower, SidebandUpper:
		return true
	default:
		return false
	}
}
