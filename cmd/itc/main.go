package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eaobservatory/jcmt-itc-heterodyne/catalog"
	"github.com/eaobservatory/jcmt-itc-heterodyne/core"
	"github.com/eaobservatory/jcmt-itc-heterodyne/model"
	"github.com/eaobservatory/jcmt-itc-heterodyne/registry"
)

var (
	flagReceiver   string
	flagMapMode    string
	flagSwitchMode string
	flagFreq       float64
	flagLine       string
	flagFreqRes    float64
	flagVelRes     float64
	flagTau        float64
	flagZenith     float64
	flagElevation  float64
	flagDSB        bool
	flagDualPol    bool
	flagSideband   string
	flagIFFreq     float64
	flagNPoints    int
	flagDimX       float64
	flagDimY       float64
	flagDx         float64
	flagDy         float64
	flagBasket     bool
	flagSepOffs    bool
	flagContinuum  bool
	flagRMS        float64
	flagElapsed    float64
	flagIntTime    float64
	flagJSON       bool
)

var rootCmd = &cobra.Command{
	Use:   "itc",
	Short: "Heterodyne integration time and sensitivity calculator.",
}

func addObservationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagReceiver, "receiver", "r", "", "Receiver name (RxA3, HARP, RxWD)")
	cmd.Flags().StringVarP(&flagMapMode, "map", "m", "grid", "Map mode (grid, jiggle, raster)")
	cmd.Flags().StringVarP(&flagSwitchMode, "switch", "s", "pssw", "Switch mode (bmsw, pssw, frsw)")
	cmd.Flags().Float64VarP(&flagFreq, "freq", "f", 0, "Sky frequency in GHz")
	cmd.Flags().StringVarP(&flagLine, "line", "l", "", "Catalog line, e.g. 'CO 3 - 2' (overrides --freq)")
	cmd.Flags().Float64Var(&flagFreqRes, "res", 0.488, "Frequency resolution in MHz")
	cmd.Flags().Float64Var(&flagVelRes, "vel-res", 0, "Velocity resolution in km/s (overrides --res)")
	cmd.Flags().Float64VarP(&flagTau, "tau", "t", 0.1, "Zenith opacity at 225 GHz")
	cmd.Flags().Float64VarP(&flagZenith, "zenith", "z", 30, "Zenith angle in degrees")
	cmd.Flags().Float64VarP(&flagElevation, "elevation", "e", 0, "Elevation in degrees (overrides --zenith)")
	cmd.Flags().BoolVar(&flagDSB, "dsb", false, "Double-sideband operation")
	cmd.Flags().BoolVar(&flagDualPol, "dual-pol", false, "Combine both polarizations")
	cmd.Flags().StringVar(&flagSideband, "sideband", "", "Signal sideband (lsb or usb)")
	cmd.Flags().Float64Var(&flagIFFreq, "if-freq", 0, "IF frequency in GHz")
	cmd.Flags().IntVarP(&flagNPoints, "points", "n", 1, "Number of grid or jiggle points")
	cmd.Flags().Float64Var(&flagDimX, "dim-x", 0, "Raster map width in arcsec")
	cmd.Flags().Float64Var(&flagDimY, "dim-y", 0, "Raster map height in arcsec")
	cmd.Flags().Float64Var(&flagDx, "dx", 0, "Raster sample spacing along a row in arcsec")
	cmd.Flags().Float64Var(&flagDy, "dy", 0, "Raster row spacing in arcsec")
	cmd.Flags().BoolVar(&flagBasket, "basket-weave", false, "Basket-weave raster")
	cmd.Flags().BoolVar(&flagSepOffs, "separate-offs", false, "Use a separate reference per point")
	cmd.Flags().BoolVar(&flagContinuum, "continuum", false, "Continuum mode (full IF bandwidth)")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Emit the full result as JSON")
}

func init() {
	timeCmd := &cobra.Command{
		Use:   "time",
		Short: "Elapsed time needed to reach a target rms",
		Run: func(cmd *cobra.Command, args []string) {
			run(func(itc *core.ITC, req model.Request) (model.Result, error) {
				req.RMS = flagRMS
				return itc.CalculateTime(req)
			}, "elapsed time", "s")
		},
	}
	timeCmd.Flags().Float64Var(&flagRMS, "rms", 0, "Target rms in K (T_A*)")
	addObservationFlags(timeCmd)
	rootCmd.AddCommand(timeCmd)

	rmsCmd := &cobra.Command{
		Use:   "rms",
		Short: "Achieved rms for a given elapsed or integration time",
		Run: func(cmd *cobra.Command, args []string) {
			run(func(itc *core.ITC, req model.Request) (model.Result, error) {
				if flagIntTime > 0 {
					req.IntTime = flagIntTime
					return itc.CalculateRMSForIntTime(req)
				}
				req.ElapsedTime = flagElapsed
				return itc.CalculateRMSForElapsedTime(req)
			}, "rms", "K")
		},
	}
	rmsCmd.Flags().Float64Var(&flagElapsed, "elapsed", 0, "Elapsed time in seconds")
	rmsCmd.Flags().Float64Var(&flagIntTime, "int-time", 0, "Integration time per point in seconds")
	addObservationFlags(rmsCmd)
	rootCmd.AddCommand(rmsCmd)

	receiversCmd := &cobra.Command{
		Use:   "receivers",
		Short: "List the supported receivers",
		Run:   func(cmd *cobra.Command, args []string) { listReceivers() },
	}
	rootCmd.AddCommand(receiversCmd)

	linesCmd := &cobra.Command{
		Use:   "lines [species]",
		Short: "List the line catalog, optionally for one species",
		Run:   func(cmd *cobra.Command, args []string) { listLines(args) },
	}
	rootCmd.AddCommand(linesCmd)
}

func buildRequest() (model.Request, error) {
	var req model.Request
	var err error

	if req.Receiver, err = model.ParseReceiver(flagReceiver); err != nil {
		return req, err
	}
	if req.MapMode, err = model.ParseMapMode(flagMapMode); err != nil {
		return req, err
	}
	if req.SwitchMode, err = model.ParseSwitchMode(flagSwitchMode); err != nil {
		return req, err
	}

	req.FreqGHz = flagFreq
	if flagLine != "" {
		species, transition, ok := strings.Cut(flagLine, " ")
		if !ok {
			return req, fmt.Errorf("line %q must be '<species> <transition>'", flagLine)
		}
		freq, found := catalog.FindTransition(species, transition)
		if !found {
			return req, fmt.Errorf("line %q not in the catalog", flagLine)
		}
		req.FreqGHz = freq
	}

	req.FreqResMHz = flagFreqRes
	if flagVelRes > 0 {
		res, err := core.VelocityToFreqRes(flagVelRes, req.FreqGHz)
		if err != nil {
			return req, err
		}
		req.FreqResMHz = res
	}

	req.Tau225 = flagTau
	req.ZenithAngleDeg = flagZenith
	if flagElevation > 0 {
		z, err := core.ZenithAngleFromElevation(flagElevation)
		if err != nil {
			return req, err
		}
		req.ZenithAngleDeg = z
	}

	req.IsDSB = flagDSB
	req.DualPolarization = flagDualPol
	req.Sideband = model.Sideband(flagSideband)
	req.IFFreqGHz = flagIFFreq
	req.NPoints = flagNPoints
	req.DimX, req.DimY = flagDimX, flagDimY
	req.Dx, req.Dy = flagDx, flagDy
	req.BasketWeave = flagBasket
	req.SeparateOffs = flagSepOffs
	req.ContinuumMode = flagContinuum
	req.WithExtra = true
	return req, nil
}

func run(calculate func(*core.ITC, model.Request) (model.Result, error), label, unit string) {
	req, err := buildRequest()
	if err != nil {
		fatal(err)
	}

	reg, err := registry.Default()
	if err != nil {
		fatal(err)
	}

	result, err := calculate(core.New(reg), req)
	if err != nil {
		fatal(err)
	}

	if flagJSON {
		emitJSON(result)
		return
	}

	fmt.Printf("%s: %.3f %s\n", label, result.Value, unit)
	if extra := result.Extra; extra != nil {
		fmt.Printf("  T_rx:         %.1f K\n", extra.TRx)
		fmt.Printf("  T_sys:        %.1f K\n", extra.TSys)
		fmt.Printf("  airmass:      %.4f\n", extra.Airmass)
		fmt.Printf("  transmission: %.4f\n", extra.Transmission)
		fmt.Printf("  bandwidth:    %.0f Hz\n", extra.BandwidthHz)
		fmt.Printf("  int time:     %.2f s\n", extra.IntTime)
		fmt.Printf("  elapsed:      %.2f s\n", extra.ElapsedTime)
		if extra.ImageFreqGHz > 0 {
			fmt.Printf("  image freq:   %.3f GHz\n", extra.ImageFreqGHz)
		}
	}
}

func listReceivers() {
	reg, err := registry.Default()
	if err != nil {
		fatal(err)
	}
	for _, info := range reg.Receivers() {
		fmt.Printf("%-6s %6.1f - %6.1f GHz  pixels=%d", info.Name, info.Band.MinGHz, info.Band.MaxGHz, info.NPixels)
		switch {
		case info.SSBAvailable && info.DSBAvailable:
			fmt.Print("  ssb+dsb")
		case info.SSBAvailable:
			fmt.Print("  ssb")
		case info.DSBAvailable:
			fmt.Print("  dsb")
		}
		if info.FreqSwAvailable {
			fmt.Print("  frsw")
		}
		fmt.Println()
	}
}

func listLines(args []string) {
	species, err := catalog.Load()
	if err != nil {
		fatal(err)
	}
	for _, sp := range species {
		if len(args) > 0 && sp.Name != args[0] {
			continue
		}
		for _, tr := range sp.Transitions {
			fmt.Printf("%-8s %-12s %10.4f GHz\n", sp.Name, tr.Name, tr.FreqGHz)
		}
	}
}

func emitJSON(result model.Result) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "itc:", err)
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
