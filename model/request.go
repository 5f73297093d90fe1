package model

// Request carries the observation parameters for one calculation.
// Exactly one of RMS, ElapsedTime and IntTime is the solve-for target;
// the entry point invoked on the facade determines which one, and the
// other two must be left unset. Zero values mean "not supplied".
type Request struct {
	Receiver   Receiver   `json:"Receiver"`
	MapMode    MapMode    `json:"MapMode"`
	SwitchMode SwitchMode `json:"SwitchMode"`

	// FreqGHz is the sky frequency of the line.
	FreqGHz float64 `json:"FreqGHz"`
	// FreqResMHz is the requested spectral resolution. Ignored in
	// continuum mode, where the full IF bandwidth is used instead.
	FreqResMHz float64 `json:"FreqResMHz"`

	// Tau225 is the zenith opacity at 225 GHz.
	Tau225 float64 `json:"Tau225"`
	// ZenithAngleDeg is the source zenith angle, 0 <= z < 90.
	ZenithAngleDeg float64 `json:"ZenithAngleDeg"`

	// IsDSB requests double-sideband operation.
	IsDSB bool `json:"IsDSB"`
	// DualPolarization combines both polarizations of a two-mixer
	// receiver.
	DualPolarization bool `json:"DualPolarization"`

	// Sideband optionally picks the signal sideband; IFFreqGHz places
	// the line within the IF band (used for image-frequency
	// diagnostics).
	Sideband  Sideband `json:"Sideband,omitempty"`
	IFFreqGHz float64  `json:"IFFreqGHz,omitempty"`

	// NPoints is the number of pattern positions (jiggle) or map
	// positions (grid).
	NPoints int `json:"NPoints,omitempty"`

	// Raster map geometry, arcsec.
	DimX float64 `json:"DimX,omitempty"`
	DimY float64 `json:"DimY,omitempty"`
	Dx   float64 `json:"Dx,omitempty"`
	Dy   float64 `json:"Dy,omitempty"`

	// BasketWeave requests a second, orthogonal raster pass.
	BasketWeave bool `json:"BasketWeave,omitempty"`
	// SeparateOffs gives every grid/jiggle point its own reference.
	SeparateOffs bool `json:"SeparateOffs,omitempty"`

	// ContinuumMode maximises bandwidth instead of honouring
	// FreqResMHz.
	ContinuumMode bool `json:"ContinuumMode,omitempty"`

	// Solve-for quantities: the entry point fixes which one is the
	// unknown; supplying the wrong combination is a configuration
	// error.
	RMS         float64 `json:"RMS,omitempty"`         // K (T_A*)
	ElapsedTime float64 `json:"ElapsedTime,omitempty"` // seconds
	IntTime     float64 `json:"IntTime,omitempty"`     // seconds per point

	// WithExtra asks for the diagnostic block in the result.
	WithExtra bool `json:"WithExtra,omitempty"`
}
