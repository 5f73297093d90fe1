// Package registry holds the immutable receiver parameter table and
// the atmospheric opacity grid. Both are constructed once, at process
// start, and shared read-only by every calculation; there is no
// locking because nothing mutates them after construction.
package registry

import (
	"fmt"
	"math"

	"github.com/eaobservatory/jcmt-itc-heterodyne/model"
)

// Registry is the process-wide lookup for receiver parameters and
// opacity data.
type Registry struct {
	receivers map[model.Receiver]*model.ReceiverInfo
	opacity   *OpacityGrid
}

// Options allows a calibration pipeline to inject its own fitted
// tables in place of the embedded defaults. Nil fields fall back to
// the embedded data.
type Options struct {
	Receivers map[model.Receiver]*model.ReceiverInfo
	Opacity   *OpacityGrid
}

// New constructs a registry from the given options, validating every
// injected table.
func New(opts Options) (*Registry, error) {
	receivers := opts.Receivers
	if receivers == nil {
		loaded, err := loadEmbeddedReceivers()
		if err != nil {
			return nil, err
		}
		receivers = loaded
	}

	opacity := opts.Opacity
	if opacity == nil {
		loaded, err := loadEmbeddedOpacity()
		if err != nil {
			return nil, err
		}
		opacity = loaded
	}

	reg := &Registry{
		receivers: make(map[model.Receiver]*model.ReceiverInfo, len(receivers)),
		opacity:   opacity,
	}

	for receiver, info := range receivers {
		if err := validateReceiverInfo(receiver, info); err != nil {
			return nil, err
		}
		finalized := *info
		if info.Array != nil {
			array := *info.Array
			array.FootprintArcsec = array.SizeArcsec *
				math.Cos(array.FAngleDeg*math.Pi/180.0)
			finalized.Array = &array
		}
		reg.receivers[receiver] = &finalized
	}

	if err := opacity.validate(); err != nil {
		return nil, err
	}

	return reg, nil
}

// Default constructs a registry from the embedded data tables.
func Default() (*Registry, error) {
	return New(Options{})
}

// Receiver returns the parameter record for the given receiver.
func (r *Registry) Receiver(receiver model.Receiver) (*model.ReceiverInfo, error) {
	info, ok := r.receivers[receiver]
	if !ok {
		return nil, fmt.Errorf("no receiver information for %q", receiver)
	}
	return info, nil
}

// Receivers returns the parameter records in display order.
func (r *Registry) Receivers() []*model.ReceiverInfo {
	out := make([]*model.ReceiverInfo, 0, len(r.receivers))
	for _, receiver := range model.AllReceivers() {
		if info, ok := r.receivers[receiver]; ok {
			out = append(out, info)
		}
	}
	return out
}

// Opacity exposes the opacity grid for the atmosphere model.
func (r *Registry) Opacity() *OpacityGrid {
	return r.opacity
}

func validateReceiverInfo(receiver model.Receiver, info *model.ReceiverInfo) error {
	if info == nil {
		return fmt.Errorf("receiver %q: nil info", receiver)
	}
	if info.Name == "" {
		return fmt.Errorf("receiver %q: name is required", receiver)
	}
	if info.Band.MinGHz <= 0 || info.Band.MaxGHz <= info.Band.MinGHz {
		return fmt.Errorf("receiver %q: invalid frequency band [%g, %g]",
			receiver, info.Band.MinGHz, info.Band.MaxGHz)
	}
	if info.NMix < 1 {
		return fmt.Errorf("receiver %q: at least one mixer is required", receiver)
	}
	if info.NPixels < 1 {
		return fmt.Errorf("receiver %q: at least one pixel is required", receiver)
	}
	if info.EtaTel <= 0 || info.EtaTel > 1 {
		return fmt.Errorf("receiver %q: eta_tel %g outside (0, 1]", receiver, info.EtaTel)
	}
	if info.IFBandwidthHz <= 0 {
		return fmt.Errorf("receiver %q: IF bandwidth is required", receiver)
	}
	if len(info.TRx) == 0 {
		return fmt.Errorf("receiver %q: empty T_rx table", receiver)
	}
	for i := 1; i < len(info.TRx); i++ {
		if info.TRx[i].FreqGHz <= info.TRx[i-1].FreqGHz {
			return fmt.Errorf("receiver %q: T_rx table not sorted by frequency", receiver)
		}
	}
	if info.Array != nil {
		if info.Array.SizeArcsec <= 0 {
			return fmt.Errorf("receiver %q: array size is required", receiver)
		}
		for name, n := range info.Array.JigglePatterns {
			if n < 1 {
				return fmt.Errorf("receiver %q: jiggle pattern %q has %d points",
					receiver, name, n)
			}
		}
	}
	return nil
}
