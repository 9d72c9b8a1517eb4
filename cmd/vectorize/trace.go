package main

import (
	"fmt"

	vectorize "github.com/dalefugier/Vectorize"
	"github.com/dalefugier/Vectorize/trace"
	"github.com/spf13/cobra"
)

var traceFlags struct {
	outputFlags

	threshold    float64
	speckles     int
	corners      float64
	optimize     float64
	noOptimize   bool
	turnPolicy   string
	border       bool
	saveSettings bool
}

var traceCmd = &cobra.Command{
	Use:   "trace IMAGE",
	Short: "Trace an image and write the curves as SVG",
	Long: `Trace an image and write the curves as SVG.

Parameters are read from the settings file first. Flags that are given
explicitly override them and are validated strictly: out of range values
are an error rather than being clamped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, p, err := loadSettings()
		if err != nil {
			return err
		}
		if err := applyTraceFlags(cmd, &p); err != nil {
			return err
		}
		src, err := vectorize.OpenImage(args[0])
		if err != nil {
			return err
		}
		s, err := traceFlags.session(src, &p, trace.New())
		if err != nil {
			return err
		}
		if err := s.Retrace(cmd.Context()); err != nil {
			return err
		}
		if err := traceFlags.write(s, args[0], cmd.OutOrStdout()); err != nil {
			return err
		}
		if traceFlags.saveSettings {
			return saveSettings(fs, p)
		}
		return nil
	},
}

func init() {
	f := traceCmd.Flags()
	d := vectorize.DefaultParams()
	f.Float64Var(&traceFlags.threshold, "threshold", d.Threshold(), "brightness threshold between 0 and 1")
	f.IntVar(&traceFlags.speckles, "speckles", d.TurdSize(), "suppress speckles of up to this many pixels")
	f.Float64Var(&traceFlags.corners, "corners", d.AlphaMax(), "corner threshold, 0 for a polygon")
	f.Float64Var(&traceFlags.optimize, "optimize", d.OptimizeTolerance(), "curve optimization tolerance")
	f.BoolVar(&traceFlags.noOptimize, "no-optimize", false, "don't join adjacent curves")
	f.StringVar(&traceFlags.turnPolicy, "turn-policy", d.TurnPolicy().String(), "how to resolve ambiguous paths: black, white, left, right, minority, majority or random")
	f.BoolVar(&traceFlags.border, "border", d.IncludeBorder(), "include the image border in the output")
	f.BoolVar(&traceFlags.saveSettings, "save-settings", false, "save the parameters used as the new settings")
	traceFlags.register(traceCmd)
}

// applyTraceFlags sets the parameters given explicitly on the command
// line.
func applyTraceFlags(cmd *cobra.Command, p *vectorize.Params) error {
	f := cmd.Flags()
	if f.Changed("threshold") {
		v := traceFlags.threshold
		if v < vectorize.MinThreshold || v > vectorize.MaxThreshold {
			return fmt.Errorf("%w: threshold %v not in [%v, %v]", vectorize.ErrInvalidParameter, v, vectorize.MinThreshold, vectorize.MaxThreshold)
		}
		p.SetThreshold(v)
	}
	if f.Changed("speckles") {
		if err := p.SetTurdSizeStrict(traceFlags.speckles); err != nil {
			return err
		}
	}
	if f.Changed("corners") {
		if err := p.SetAlphaMaxStrict(traceFlags.corners); err != nil {
			return err
		}
	}
	if f.Changed("optimize") {
		if err := p.SetOptimizeToleranceStrict(traceFlags.optimize); err != nil {
			return err
		}
		p.SetOptimizeCurve(true)
	}
	if f.Changed("no-optimize") {
		p.SetOptimizeCurve(!traceFlags.noOptimize)
	}
	if f.Changed("turn-policy") {
		tp, err := vectorize.ParseTurnPolicy(traceFlags.turnPolicy)
		if err != nil {
			return err
		}
		p.SetTurnPolicy(tp)
	}
	if f.Changed("border") {
		p.SetIncludeBorder(traceFlags.border)
	}
	return nil
}
