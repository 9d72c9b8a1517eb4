package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"strings"
	"testing"

	vectorize "github.com/dalefugier/Vectorize"
	"github.com/dalefugier/Vectorize/trace"
)

func testSession(t *testing.T) *vectorize.Session {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := range 16 {
		for x := range 16 {
			c := color.NRGBA{0xff, 0xff, 0xff, 0xff}
			if x >= 4 && x < 12 && y >= 4 && y < 12 {
				c = color.NRGBA{0, 0, 0, 0xff}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	src, err := vectorize.NewImageSource(img)
	if err != nil {
		t.Fatal(err)
	}
	return vectorize.NewSession(src, nil, trace.New())
}

func TestRunOptions(t *testing.T) {
	s := testSession(t)
	in := strings.NewReader("speckles 0\ncorners 0\nborder no\npolicy black\nbogus\nthreshold 2\nspeckles 101\nshow\ndone\nthreshold 0.9\n")
	var out bytes.Buffer
	ok, err := runOptions(context.Background(), s, in, &out, false)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("options were canceled")
	}

	want := vectorize.DefaultParams()
	want.SetTurdSize(0)
	want.SetAlphaMax(0)
	want.SetIncludeBorder(false)
	want.SetTurnPolicy(vectorize.TurnBlack)
	if got := *s.Params(); got != want {
		t.Errorf("got params %v, want %v", got, want)
	}
	for _, msg := range []string{`unknown option "bogus"`, "threshold 2 out of range", "TurdSize 101 out of range"} {
		if !strings.Contains(out.String(), msg) {
			t.Errorf("output doesn't mention %q:\n%s", msg, out.String())
		}
	}
	cs := s.CurveSet()
	if cs == nil || cs.IncludeBorder {
		t.Fatalf("got curve set %v, want one without border", cs)
	}
	if n := len(cs.VisibleCurves()); n != 1 {
		t.Errorf("got %d visible curves, want 1", n)
	}
}

func TestRunOptionsCancel(t *testing.T) {
	s := testSession(t)
	ok, err := runOptions(context.Background(), s, strings.NewReader("speckles 5\ncancel\n"), &bytes.Buffer{}, false)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("cancel reported as done")
	}
	if st := s.State(); st != vectorize.Disabled {
		t.Errorf("got state %v, want %v", st, vectorize.Disabled)
	}
}

func TestRunOptionsEOF(t *testing.T) {
	s := testSession(t)
	ok, err := runOptions(context.Background(), s, strings.NewReader("defaults"), &bytes.Buffer{}, false)
	if err != nil || !ok {
		t.Errorf("got %t, %v, want true, nil", ok, err)
	}
	if got, want := *s.Params(), vectorize.DefaultParams(); got != want {
		t.Errorf("got params %v, want %v", got, want)
	}
}

func TestOutputScale(t *testing.T) {
	for _, tc := range []struct {
		flags  outputFlags
		sx, sy float64
	}{
		{outputFlags{units: "px", dpi: 300}, 1, 1},
		{outputFlags{units: "in", dpi: 100}, 0.01, 0.01},
		{outputFlags{units: "mm", dpi: 25.4}, 1, 1},
		{outputFlags{units: "in", dpi: 100, dpiY: 50}, 0.01, 0.02},
	} {
		sx, sy, err := tc.flags.scale()
		if err != nil {
			t.Errorf("%+v: %v", tc.flags, err)
			continue
		}
		if sx != tc.sx || sy != tc.sy {
			t.Errorf("%+v: got scale %v, %v, want %v, %v", tc.flags, sx, sy, tc.sx, tc.sy)
		}
	}

	if _, _, err := (&outputFlags{units: "furlong", dpi: 1}).scale(); err == nil {
		t.Error("unknown units accepted")
	}
	if _, _, err := (&outputFlags{units: "in"}).scale(); err == nil {
		t.Error("zero resolution accepted")
	}
}

func TestSVGPath(t *testing.T) {
	o := outputFlags{}
	if got := o.svgPath("dir/scan.png"); got != "dir/scan.svg" {
		t.Errorf("got %q", got)
	}
	o.svg = "-"
	if got := o.svgPath("scan.png"); got != "-" {
		t.Errorf("got %q", got)
	}
}
