package vectorize

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"strconv"

	"honnef.co/go/curve"
)

// SVGOptions control [WriteSVG].
type SVGOptions struct {
	// MaxPrecision limits the number of decimal digits of coordinates. 0
	// writes every coordinate exactly.
	MaxPrecision int
	// Stroke color, "black" by default.
	Stroke string
	// Stroke width in output units, 1 by default.
	StrokeWidth float64
	// Fill color, "none" by default.
	Fill string
}

// WriteSVG writes the visible curves of cs as a standalone SVG document,
// one path element per curve. Curves are flipped from cartesian to SVG's
// top-down orientation; the view box is the bounds of cs.
func WriteSVG(w io.Writer, cs *CurveSet, opts SVGOptions) error {
	if cs.Len() == 0 {
		return errors.New("vectorize: empty curve set")
	}
	stroke := cmp.Or(opts.Stroke, "black")
	fill := cmp.Or(opts.Fill, "none")
	width := cmp.Or(opts.StrokeWidth, 1)

	b := cs.Bounds.Abs()
	flip := curve.FlipY.ThenTranslate(curve.Vec(0, b.Y0+b.Y1))
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`+"\n",
		num(b.Width()), num(b.Height()), num(b.X0), num(b.Y0), num(b.Width()), num(b.Height()))
	fmt.Fprintf(bw, `<g fill="%s" stroke="%s" stroke-width="%s">`+"\n", fill, stroke, num(width))
	for i, c := range cs.Visible() {
		fmt.Fprintf(bw, `<path id="curve%d" d="`, i)
		if err := curve.WriteSVG(bw, c.Transform(flip).Elements(), curve.SVGOptions{MaxPrecision: opts.MaxPrecision}); err != nil {
			return err
		}
		fmt.Fprint(bw, "\"/>\n")
	}
	fmt.Fprint(bw, "</g>\n</svg>\n")
	return bw.Flush()
}
