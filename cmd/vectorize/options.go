package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	vectorize "github.com/dalefugier/Vectorize"
	"github.com/dalefugier/Vectorize/trace"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var optionsFlags outputFlags

var optionsCmd = &cobra.Command{
	Use:   "options IMAGE",
	Short: "Adjust tracing parameters interactively",
	Long: `Adjust tracing parameters interactively.

The image is traced once with the saved settings. Each command changes
one parameter and traces the image again:

  threshold N     brightness threshold between 0 and 1
  speckles N      suppress speckles of up to N pixels
  corners N       corner threshold between 0 and 4/3
  optimize N|off  curve optimization tolerance, or off
  border yes|no   include the image border
  policy NAME     turn policy
  defaults        restore the default parameters
  show            print the current parameters

An empty line or "done" writes the output and saves the settings.
"cancel" quits without writing anything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, p, err := loadSettings()
		if err != nil {
			return err
		}
		src, err := vectorize.OpenImage(args[0])
		if err != nil {
			return err
		}
		s, err := optionsFlags.session(src, &p, trace.New())
		if err != nil {
			return err
		}
		prompt := term.IsTerminal(int(os.Stdin.Fd()))
		ok, err := runOptions(cmd.Context(), s, cmd.InOrStdin(), cmd.ErrOrStderr(), prompt)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "canceled")
			return nil
		}
		if err := optionsFlags.write(s, args[0], cmd.OutOrStdout()); err != nil {
			return err
		}
		return saveSettings(fs, *s.Params())
	},
}

func init() {
	optionsFlags.register(optionsCmd)
}

type optionResult int

const (
	optionContinue optionResult = iota
	optionDone
	optionCancel
)

// runOptions reads option commands from in until the user is done or
// cancels, retracing s after every change. It reports whether the user
// finished rather than canceled. End of input counts as done.
func runOptions(ctx context.Context, s *vectorize.Session, in io.Reader, out io.Writer, prompt bool) (bool, error) {
	if err := s.Retrace(ctx); err != nil {
		return false, err
	}
	summary(out, s)

	sc := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, "Vectorization options. Press Enter when done: ")
		}
		if !sc.Scan() {
			return true, sc.Err()
		}
		res, err := applyOption(ctx, s, strings.Fields(sc.Text()))
		switch {
		case errors.Is(err, vectorize.ErrInvalidParameter), errors.Is(err, vectorize.ErrTracerFailure):
			fmt.Fprintln(out, err)
			continue
		case err != nil:
			return false, err
		}
		switch res {
		case optionDone:
			return true, nil
		case optionCancel:
			s.Disable()
			return false, nil
		}
		summary(out, s)
	}
}

func summary(out io.Writer, s *vectorize.Session) {
	fmt.Fprintln(out, s.Params())
	if cs := s.CurveSet(); cs != nil {
		fmt.Fprintf(out, "%d curves, %d skipped\n", len(cs.VisibleCurves()), cs.Skipped)
	}
}

// applyOption executes a single option command.
func applyOption(ctx context.Context, s *vectorize.Session, args []string) (optionResult, error) {
	if len(args) == 0 {
		return optionDone, nil
	}
	name, args := strings.ToLower(args[0]), args[1:]

	// Values are checked on a copy so that a bad value never reaches
	// the session.
	check := *s.Params()
	var (
		f  vectorize.Field
		fn func(p *vectorize.Params)
	)
	switch name {
	case "done":
		return optionDone, nil
	case "cancel":
		return optionCancel, nil
	case "show":
		return optionContinue, nil
	case "defaults":
		// Restoring every field also covers the threshold, which forces
		// the bitmap to be checked again.
		f, fn = vectorize.FieldThreshold, (*vectorize.Params).RestoreDefaults
	case "threshold":
		v, err := floatArg(name, args)
		if err != nil {
			return optionContinue, err
		}
		if v < vectorize.MinThreshold || v > vectorize.MaxThreshold {
			return optionContinue, fmt.Errorf("%w: threshold %v out of range [%v, %v]", vectorize.ErrInvalidParameter, v, vectorize.MinThreshold, vectorize.MaxThreshold)
		}
		f, fn = vectorize.FieldThreshold, func(p *vectorize.Params) { p.SetThreshold(v) }
	case "speckles":
		v, err := intArg(name, args)
		if err != nil {
			return optionContinue, err
		}
		if err := check.SetTurdSizeStrict(v); err != nil {
			return optionContinue, err
		}
		f, fn = vectorize.FieldTurdSize, func(p *vectorize.Params) { p.SetTurdSize(v) }
	case "corners":
		v, err := floatArg(name, args)
		if err != nil {
			return optionContinue, err
		}
		if err := check.SetAlphaMaxStrict(v); err != nil {
			return optionContinue, err
		}
		f, fn = vectorize.FieldAlphaMax, func(p *vectorize.Params) { p.SetAlphaMax(v) }
	case "optimize":
		if len(args) == 1 && strings.EqualFold(args[0], "off") {
			f, fn = vectorize.FieldOptimizeCurve, func(p *vectorize.Params) { p.SetOptimizeCurve(false) }
			break
		}
		v, err := floatArg(name, args)
		if err != nil {
			return optionContinue, err
		}
		if err := check.SetOptimizeToleranceStrict(v); err != nil {
			return optionContinue, err
		}
		f, fn = vectorize.FieldOptimizeTolerance, func(p *vectorize.Params) {
			p.SetOptimizeCurve(true)
			p.SetOptimizeTolerance(v)
		}
	case "border":
		if len(args) != 1 {
			return optionContinue, fmt.Errorf("%w: usage: border yes|no", vectorize.ErrInvalidParameter)
		}
		v, err := parseYesNo(args[0])
		if err != nil {
			return optionContinue, err
		}
		f, fn = vectorize.FieldIncludeBorder, func(p *vectorize.Params) { p.SetIncludeBorder(v) }
	case "policy":
		if len(args) != 1 {
			return optionContinue, fmt.Errorf("%w: usage: policy NAME", vectorize.ErrInvalidParameter)
		}
		tp, err := vectorize.ParseTurnPolicy(args[0])
		if err != nil {
			return optionContinue, err
		}
		f, fn = vectorize.FieldTurnPolicy, func(p *vectorize.Params) { p.SetTurnPolicy(tp) }
	default:
		return optionContinue, fmt.Errorf("%w: unknown option %q", vectorize.ErrInvalidParameter, name)
	}
	return optionContinue, s.Update(ctx, f, fn)
}

func floatArg(name string, args []string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: usage: %s N", vectorize.ErrInvalidParameter, name)
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a number", vectorize.ErrInvalidParameter, name, args[0])
	}
	return v, nil
}

func intArg(name string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: usage: %s N", vectorize.ErrInvalidParameter, name)
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", vectorize.ErrInvalidParameter, name, args[0])
	}
	return v, nil
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "y", "true", "on":
		return true, nil
	case "no", "n", "false", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is neither yes nor no", vectorize.ErrInvalidParameter, s)
	}
}
