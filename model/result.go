package model

// Extra is the optional diagnostic block attached to a result. All
// values are derived outputs; none is ever fed back as an input.
type Extra struct {
	TRx          float64 `json:"TRx"`          // receiver temperature, K
	TSys         float64 `json:"TSys"`         // system temperature, K
	TauFreq      float64 `json:"TauFreq"`      // zenith opacity at the observing frequency
	Opacity      float64 `json:"Opacity"`      // line-of-sight opacity
	Airmass      float64 `json:"Airmass"`      // 1/cos(zenith angle)
	Transmission float64 `json:"Transmission"` // exp(-opacity)

	// BandwidthHz is the effective noise bandwidth entering the
	// radiometer equation.
	BandwidthHz float64 `json:"BandwidthHz"`

	// Points is the number of distinct map positions sharing the
	// observation; Passes the number of coverage passes.
	Points int `json:"Points"`
	Passes int `json:"Passes"`

	// RowOverlap is the number of array rows covering each sky point
	// in an oversampled raster (1 otherwise).
	RowOverlap int `json:"RowOverlap"`

	// IntTime is the integration time per point (seconds); ElapsedTime
	// the total observation time; whichever was not the solved scalar
	// is reported here.
	IntTime     float64 `json:"IntTime"`
	ElapsedTime float64 `json:"ElapsedTime"`

	// ImageFreqGHz is the image-sideband frequency when an IF
	// frequency was supplied; 0 otherwise.
	ImageFreqGHz float64 `json:"ImageFreqGHz,omitempty"`
}

// Result is the outcome of one calculation: the solved scalar (rms in
// K, or a time in seconds depending on the entry point) plus optional
// diagnostics.
type Result struct {
	Value float64 `json:"Value"`
	Extra *Extra  `json:"Extra,omitempty"`
}
