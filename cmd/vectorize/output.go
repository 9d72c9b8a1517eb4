package main

import (
	"cmp"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	vectorize "github.com/dalefugier/Vectorize"
	"github.com/spf13/cobra"
)

// outputFlags are shared by the commands that write results.
type outputFlags struct {
	svg       string
	preview   string
	zoom      int
	precision int

	units           string
	dpi, dpiX, dpiY float64
	simplify        float64
}

func (o *outputFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.svg, "output", "o", "", `SVG output file, "-" for stdout (default IMAGE with .svg extension)`)
	f.StringVar(&o.preview, "preview", "", "also write a PNG preview of the curves over the bitmap")
	f.IntVar(&o.zoom, "zoom", 4, "preview pixels per image pixel")
	f.IntVar(&o.precision, "precision", 0, "maximum number of decimals in SVG coordinates, 0 for exact")
	f.StringVar(&o.units, "units", "px", "output units: px, in, mm, cm or pt")
	f.Float64Var(&o.dpi, "dpi", 96, "image resolution, used with physical units")
	f.Float64Var(&o.dpiX, "dpi-x", 0, "horizontal image resolution (default --dpi)")
	f.Float64Var(&o.dpiY, "dpi-y", 0, "vertical image resolution (default --dpi)")
	f.Float64Var(&o.simplify, "simplify", 0, "refit traced curves to within this many pixels, 0 to disable")
}

// unitsPerInch returns the number of units in an inch, or 0 for pixels.
func unitsPerInch(units string) (float64, error) {
	switch strings.ToLower(units) {
	case "px", "":
		return 0, nil
	case "in":
		return 1, nil
	case "mm":
		return 25.4, nil
	case "cm":
		return 2.54, nil
	case "pt":
		return 72, nil
	default:
		return 0, fmt.Errorf("%w: unknown units %q", vectorize.ErrInvalidParameter, units)
	}
}

// scale returns the factors that map image pixels to output units.
func (o *outputFlags) scale() (float64, float64, error) {
	upi, err := unitsPerInch(o.units)
	if err != nil {
		return 0, 0, err
	}
	if upi == 0 {
		return 1, 1, nil
	}
	dx, dy := cmp.Or(o.dpiX, o.dpi), cmp.Or(o.dpiY, o.dpi)
	if dx <= 0 || dy <= 0 {
		return 0, 0, fmt.Errorf("%w: resolution must be positive", vectorize.ErrInvalidParameter)
	}
	return upi / dx, upi / dy, nil
}

// session returns a session tracing src with the output flags applied.
func (o *outputFlags) session(src vectorize.Source, p *vectorize.Params, tracer vectorize.Tracer) (*vectorize.Session, error) {
	sx, sy, err := o.scale()
	if err != nil {
		return nil, err
	}
	ropts := vectorize.DefaultReconstructOptions
	if o.simplify > 0 {
		// The accuracy is given in pixels, curves are simplified in
		// pixel space before scaling.
		ropts.SimplifyAccuracy = o.simplify
	}
	return vectorize.NewSession(src, p, tracer,
		vectorize.WithScale(sx, sy),
		vectorize.WithReconstructOptions(ropts)), nil
}

func (o *outputFlags) svgPath(image string) string {
	if o.svg != "" {
		return o.svg
	}
	return strings.TrimSuffix(image, filepath.Ext(image)) + ".svg"
}

// write writes the SVG and, if requested, the preview of the session's
// current result.
func (o *outputFlags) write(s *vectorize.Session, image string, stdout io.Writer) error {
	cs := s.CurveSet()
	path := o.svgPath(image)
	opts := vectorize.SVGOptions{MaxPrecision: o.precision}
	if path == "-" {
		if err := vectorize.WriteSVG(stdout, cs, opts); err != nil {
			return err
		}
	} else if err := writeFile(path, func(w io.Writer) error { return vectorize.WriteSVG(w, cs, opts) }); err != nil {
		return err
	}

	if o.preview != "" {
		img := vectorize.RenderPreview(cs, s.Bitmap(), vectorize.PreviewOptions{Zoom: o.zoom})
		if err := writeFile(o.preview, func(w io.Writer) error { return png.Encode(w, img) }); err != nil {
			return err
		}
	}
	vectorize.Logger().Info("wrote output", "svg", path, "preview", o.preview, "curves", len(cs.VisibleCurves()))
	return nil
}

func writeFile(path string, fn func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
